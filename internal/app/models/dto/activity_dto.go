package dto

// CreateActivityRequest represents a logged extracurricular activity
type CreateActivityRequest struct {
	StudentID        int64   `json:"studentId" binding:"required,gt=0"`
	ActivityCategory string  `json:"activityCategory" binding:"required"`
	ActivityDate     string  `json:"activityDate" binding:"required" example:"2026-01-20"`
	Description      *string `json:"description,omitempty"`
}

// ActivityResponse represents a stored activity entry
type ActivityResponse struct {
	ID               int64   `json:"id"`
	StudentID        int64   `json:"studentId"`
	StudentName      string  `json:"studentName,omitempty"`
	ActivityCategory string  `json:"activityCategory"`
	ActivityDate     string  `json:"activityDate"`
	Description      *string `json:"description,omitempty"`
	CreatedAt        string  `json:"createdAt"`
}

// ActivityListResponse represents a list of activity entries
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}
