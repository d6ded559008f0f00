package models

import "time"

// Result defines an exam outcome based on the 'result' table. Marks,
// grade and CGPA are recorded as given; nothing checks that the grade
// follows from the marks.
type Result struct {
	ID           int64        `json:"id" db:"id"`
	StudentID    int64        `json:"studentId" db:"student_id"`
	ExamID       int64        `json:"examId" db:"exam_id"`
	ObtainMarks  int          `json:"obtainMarks" db:"obtain_marks"`
	TotalMarks   int          `json:"totalMarks" db:"total_marks"`
	Grade        *string      `json:"grade,omitempty" db:"grade" example:"A"`
	CGPA         *float64     `json:"cgpa,omitempty" db:"cgpa" example:"8.4"`
	ResultStatus ResultStatus `json:"resultStatus" db:"result_status" example:"Pass"`
	CreatedAt    time.Time    `json:"createdAt" db:"created_at"`

	// Relations, populated by read-side join
	StudentName string `json:"studentName,omitempty"`
	ExamName    string `json:"examName,omitempty"`
	Subject     string `json:"subject,omitempty"`
}
