package dto

// CreateResultRequest represents a published exam result
type CreateResultRequest struct {
	StudentID    int64    `json:"studentId" binding:"required,gt=0"`
	ExamID       int64    `json:"examId" binding:"required,gt=0"`
	ObtainMarks  int      `json:"obtainMarks" binding:"gte=0"`
	TotalMarks   int      `json:"totalMarks" binding:"required,gt=0"`
	Grade        *string  `json:"grade,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	ResultStatus string   `json:"resultStatus" binding:"required,oneof=Pass Fail ATKT"`
}

// ResultResponse represents a stored exam result
type ResultResponse struct {
	ID           int64    `json:"id"`
	StudentID    int64    `json:"studentId"`
	StudentName  string   `json:"studentName,omitempty"`
	ExamID       int64    `json:"examId"`
	ExamName     string   `json:"examName,omitempty"`
	Subject      string   `json:"subject,omitempty"`
	ObtainMarks  int      `json:"obtainMarks"`
	TotalMarks   int      `json:"totalMarks"`
	Grade        *string  `json:"grade,omitempty"`
	CGPA         *float64 `json:"cgpa,omitempty"`
	ResultStatus string   `json:"resultStatus"`
	CreatedAt    string   `json:"createdAt"`
}

// ResultFilterRequest represents the optional filters of a result listing
type ResultFilterRequest struct {
	StudentID *int64  `form:"studentId"`
	ExamID    *int64  `form:"examId"`
	Status    *string `form:"status"`
}

// ResultListResponse represents a paginated list of results
type ResultListResponse struct {
	Results    []ResultResponse `json:"results"`
	Pagination PaginationInfo   `json:"pagination"`
}
