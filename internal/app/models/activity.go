package models

import "time"

// SocialActivity logs an extracurricular activity for a student.
type SocialActivity struct {
	ID               int64     `json:"id" db:"id"`
	StudentID        int64     `json:"studentId" db:"student_id"`
	ActivityCategory string    `json:"activityCategory" db:"activity_category" example:"Sports"`
	ActivityDate     time.Time `json:"activityDate" db:"activity_date"`
	Description      *string   `json:"description,omitempty" db:"description"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`

	// Relation, populated by read-side join
	StudentName string `json:"studentName,omitempty"`
}
