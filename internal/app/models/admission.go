package models

import "time"

// Admission defines an applicant's intake record based on the
// 'admission' table. Document paths are opaque strings; the files
// themselves are managed elsewhere.
type Admission struct {
	ID             int64           `json:"id" db:"id"`
	RegistrationID int64           `json:"registrationId" db:"registration_id"`
	CourseID       int64           `json:"courseId" db:"course_id"`
	StudentName    string          `json:"studentName" db:"student_name"`
	Email          string          `json:"email" db:"email"`
	DateOfBirth    time.Time       `json:"dateOfBirth" db:"date_of_birth"`
	FatherName     string          `json:"fatherName" db:"father_name"`
	MotherName     string          `json:"motherName" db:"mother_name"`
	MobileNo       string          `json:"mobileNo" db:"mobile_no"`
	AadharNo       string          `json:"aadharNo" db:"aadhar_no"`
	Address        string          `json:"address" db:"address"`
	State          string          `json:"state" db:"state"`
	District       string          `json:"district" db:"district"`
	Pincode        string          `json:"pincode" db:"pincode"`
	Gender         string          `json:"gender" db:"gender"`
	PreviousCGPA   *float64        `json:"previousCgpa,omitempty" db:"previous_cgpa"`
	ObtainMarks    *int            `json:"obtainMarks,omitempty" db:"obtain_marks"`
	TotalMarks     *int            `json:"totalMarks,omitempty" db:"total_marks"`
	Percentage     *float64        `json:"percentage,omitempty" db:"percentage"`
	PassingYear    *int            `json:"passingYear,omitempty" db:"passing_year"`
	PhotoPath      *string         `json:"photoPath,omitempty" db:"photo_path"`
	IDProofPath    *string         `json:"idProofPath,omitempty" db:"id_proof_path"`
	SignPath       *string         `json:"signPath,omitempty" db:"sign_path"`
	MarklistPath   *string         `json:"marklistPath,omitempty" db:"marklist_path"`
	Status         AdmissionStatus `json:"status" db:"status" example:"Pending"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`

	// Relation, populated by read-side join
	CourseName string `json:"courseName,omitempty"`
}
