package models

import "time"

// Student defines an enrolled student based on the 'student' table.
// A row exists only after an admission; promotion copies the applicant
// name and course from the admission record.
type Student struct {
	ID          int64     `json:"id" db:"id"`
	AdmissionID int64     `json:"admissionId" db:"admission_id"`
	CourseID    int64     `json:"courseId" db:"course_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relation, populated by read-side join
	CourseName string `json:"courseName,omitempty"`
}
