package dto

// CreateExamRequest represents exam scheduling data
type CreateExamRequest struct {
	ExamName        string  `json:"examName" binding:"required"`
	Subject         string  `json:"subject" binding:"required"`
	ExamType        string  `json:"examType" binding:"required"`
	CourseID        int64   `json:"courseId" binding:"required,gt=0"`
	ExamDate        string  `json:"examDate" binding:"required" example:"2026-03-10"`
	ExamTime        string  `json:"examTime" binding:"required" example:"10:00 AM"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	MaxMarks        int     `json:"maxMarks" binding:"required,gt=0"`
	ExamFee         float64 `json:"examFee" binding:"gte=0"`
	Instructions    *string `json:"instructions,omitempty"`
}

// UpdateExamRequest represents exam update data
type UpdateExamRequest struct {
	ExamName        string  `json:"examName" binding:"required"`
	Subject         string  `json:"subject" binding:"required"`
	ExamType        string  `json:"examType" binding:"required"`
	CourseID        int64   `json:"courseId" binding:"required,gt=0"`
	ExamDate        string  `json:"examDate" binding:"required"`
	ExamTime        string  `json:"examTime" binding:"required"`
	DurationMinutes int     `json:"durationMinutes" binding:"required,gt=0"`
	MaxMarks        int     `json:"maxMarks" binding:"required,gt=0"`
	ExamFee         float64 `json:"examFee" binding:"gte=0"`
	Instructions    *string `json:"instructions,omitempty"`
}

// ExamResponse represents a scheduled exam
type ExamResponse struct {
	ID              int64   `json:"id"`
	ExamName        string  `json:"examName"`
	Subject         string  `json:"subject"`
	ExamType        string  `json:"examType"`
	CourseID        int64   `json:"courseId"`
	CourseName      string  `json:"courseName,omitempty"`
	ExamDate        string  `json:"examDate"`
	ExamTime        string  `json:"examTime"`
	DurationMinutes int     `json:"durationMinutes"`
	MaxMarks        int     `json:"maxMarks"`
	ExamFee         float64 `json:"examFee"`
	Instructions    *string `json:"instructions,omitempty"`
}

// ExamListResponse represents a list of exams
type ExamListResponse struct {
	Exams      []ExamResponse `json:"exams"`
	Pagination PaginationInfo `json:"pagination"`
}
