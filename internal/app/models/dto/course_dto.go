package dto

// CourseResponse represents basic course information
type CourseResponse struct {
	ID            int64  `json:"id"`
	CourseName    string `json:"courseName"`
	CourseCode    string `json:"courseCode"`
	DurationYears int    `json:"durationYears"`
}

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	CourseName    string `json:"courseName" binding:"required"`
	CourseCode    string `json:"courseCode" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,gt=0"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	CourseName    string `json:"courseName" binding:"required"`
	CourseCode    string `json:"courseCode" binding:"required"`
	DurationYears int    `json:"durationYears" binding:"required,gt=0"`
}

// CourseFeeResponse represents a fee category defined for a course
type CourseFeeResponse struct {
	ID          int64   `json:"id"`
	CourseID    int64   `json:"courseId"`
	FeeCategory string  `json:"feeCategory"`
	Amount      float64 `json:"amount"`
}

// CourseListResponse represents a list of courses
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// CourseFeeListResponse represents the fee categories of a course
type CourseFeeListResponse struct {
	Fees []CourseFeeResponse `json:"fees"`
}
