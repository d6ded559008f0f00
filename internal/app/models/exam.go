package models

import "time"

// Exam represents a scheduled examination for a course.
type Exam struct {
	ID              int64     `json:"id" db:"id"`
	ExamName        string    `json:"examName" db:"exam_name" example:"Midterm Exam 2025"`
	Subject         string    `json:"subject" db:"subject" example:"Mathematics"`
	ExamType        string    `json:"examType" db:"exam_type" example:"Midterm"`
	CourseID        int64     `json:"courseId" db:"course_id"`
	ExamDate        time.Time `json:"examDate" db:"exam_date"`
	ExamTime        string    `json:"examTime" db:"exam_time" example:"10:00"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes" example:"180"`
	MaxMarks        int       `json:"maxMarks" db:"max_marks" example:"100"`
	ExamFee         float64   `json:"examFee" db:"exam_fee" example:"1500"`
	Instructions    *string   `json:"instructions,omitempty" db:"instructions"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Relation, populated by read-side join
	CourseName string `json:"courseName,omitempty"`
}
