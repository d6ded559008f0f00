package apperrors

import "errors"

// Common errors
var (
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Registration errors
var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrUsernameExists       = errors.New("username already exists")
	ErrEmailExists          = errors.New("email already exists")
)

// Course errors
var (
	ErrCourseNotFound      = errors.New("course not found")
	ErrCourseCodeExists    = errors.New("course with this code already exists")
	ErrCourseHasRelations  = errors.New("course has associated records and cannot be deleted")
)

// Admission errors
var (
	ErrAdmissionNotFound = errors.New("admission not found")
	ErrAadharExists      = errors.New("admission with this Aadhar number already exists")
)

// Student errors
var (
	ErrStudentNotFound       = errors.New("student not found")
	ErrStudentAlreadyExists  = errors.New("student already created for this admission")
)

// Exam / result / fee / activity errors
var (
	ErrExamNotFound     = errors.New("exam not found")
	ErrResultNotFound   = errors.New("result not found")
	ErrFeeNotFound      = errors.New("fee record not found")
	ErrActivityNotFound = errors.New("activity not found")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with an underlying sentinel
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{Err: err, Message: message}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
