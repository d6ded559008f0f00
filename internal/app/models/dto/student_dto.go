package dto

// EnrollStudentRequest represents the promotion of an approved admission
// into the student roster.
type EnrollStudentRequest struct {
	AdmissionID int64 `json:"admissionId" binding:"required,gt=0"`
}

// StudentResponse represents an enrolled student
type StudentResponse struct {
	ID          int64  `json:"id"`
	AdmissionID int64  `json:"admissionId"`
	CourseID    int64  `json:"courseId"`
	CourseName  string `json:"courseName,omitempty"`
	StudentName string `json:"studentName"`
	CreatedAt   string `json:"createdAt"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}
