package dto

// CreateAdmissionRequest represents an admission application form
type CreateAdmissionRequest struct {
	CourseID     int64    `json:"courseId" binding:"required,gt=0"`
	StudentName  string   `json:"studentName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	DateOfBirth  string   `json:"dateOfBirth" binding:"required" example:"2004-06-15"`
	FatherName   string   `json:"fatherName" binding:"required"`
	MotherName   string   `json:"motherName" binding:"required"`
	MobileNo     string   `json:"mobileNo" binding:"required,len=10,numeric"`
	AadharNo     string   `json:"aadharNo" binding:"required,len=12,numeric"`
	Address      string   `json:"address" binding:"required"`
	State        string   `json:"state" binding:"required"`
	District     string   `json:"district" binding:"required"`
	Pincode      string   `json:"pincode" binding:"required,len=6,numeric"`
	Gender       string   `json:"gender" binding:"required,oneof=Male Female Other"`
	PreviousCGPA *float64 `json:"previousCgpa,omitempty"`
	ObtainMarks  *int     `json:"obtainMarks,omitempty"`
	TotalMarks   *int     `json:"totalMarks,omitempty"`
	PassingYear  *int     `json:"passingYear,omitempty"`
	PhotoPath    *string  `json:"photoPath,omitempty"`
	IDProofPath  *string  `json:"idProofPath,omitempty"`
	SignPath     *string  `json:"signPath,omitempty"`
	MarklistPath *string  `json:"marklistPath,omitempty"`
}

// UpdateAdmissionStatusRequest represents an admission status change
type UpdateAdmissionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Approved Rejected"`
}

// AdmissionResponse represents a stored admission application
type AdmissionResponse struct {
	ID             int64    `json:"id"`
	RegistrationID int64    `json:"registrationId"`
	CourseID       int64    `json:"courseId"`
	CourseName     string   `json:"courseName,omitempty"`
	StudentName    string   `json:"studentName"`
	Email          string   `json:"email"`
	DateOfBirth    string   `json:"dateOfBirth"`
	FatherName     string   `json:"fatherName"`
	MotherName     string   `json:"motherName"`
	MobileNo       string   `json:"mobileNo"`
	AadharNo       string   `json:"aadharNo"`
	Address        string   `json:"address"`
	State          string   `json:"state"`
	District       string   `json:"district"`
	Pincode        string   `json:"pincode"`
	Gender         string   `json:"gender"`
	PreviousCGPA   *float64 `json:"previousCgpa,omitempty"`
	ObtainMarks    *int     `json:"obtainMarks,omitempty"`
	TotalMarks     *int     `json:"totalMarks,omitempty"`
	Percentage     *float64 `json:"percentage,omitempty"`
	PassingYear    *int     `json:"passingYear,omitempty"`
	PhotoPath      *string  `json:"photoPath,omitempty"`
	IDProofPath    *string  `json:"idProofPath,omitempty"`
	SignPath       *string  `json:"signPath,omitempty"`
	MarklistPath   *string  `json:"marklistPath,omitempty"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
}

// AdmissionListResponse represents a paginated list of admissions
type AdmissionListResponse struct {
	Admissions []AdmissionResponse `json:"admissions"`
	Pagination PaginationInfo      `json:"pagination"`
}
