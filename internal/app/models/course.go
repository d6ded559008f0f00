package models

import "time"

// Course represents an entry in the course catalog.
type Course struct {
	ID            int64     `json:"id" db:"id" example:"1"`
	CourseName    string    `json:"courseName" db:"course_name" example:"BBA"`
	CourseCode    string    `json:"courseCode" db:"course_code" example:"BBA001"`
	DurationYears int       `json:"durationYears" db:"duration_years" example:"3"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// CourseFee is one line of the published fee structure for a course.
type CourseFee struct {
	ID          int64   `json:"id" db:"id"`
	CourseID    int64   `json:"courseId" db:"course_id"`
	FeeCategory string  `json:"feeCategory" db:"fee_category" example:"Tuition Fee"`
	Amount      float64 `json:"amount" db:"amount" example:"20000"`
}
