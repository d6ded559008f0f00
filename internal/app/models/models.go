package models

// RoleType defines the account role stored on a registration row.
type RoleType string

const (
	RoleStudent RoleType = "student"
	RoleAdmin   RoleType = "admin"
)

// AdmissionStatus is the decision state of an admission application.
// Any value may be set at any time; no transition order is enforced.
type AdmissionStatus string

const (
	AdmissionPending  AdmissionStatus = "Pending"
	AdmissionApproved AdmissionStatus = "Approved"
	AdmissionRejected AdmissionStatus = "Rejected"
)

// Valid reports whether s is one of the known admission statuses.
func (s AdmissionStatus) Valid() bool {
	switch s {
	case AdmissionPending, AdmissionApproved, AdmissionRejected:
		return true
	}
	return false
}

// ResultStatus is the outcome recorded on a result row. ATKT ("Allowed
// To Keep Term") marks conditional progression despite a failed subject.
type ResultStatus string

const (
	ResultPass ResultStatus = "Pass"
	ResultFail ResultStatus = "Fail"
	ResultATKT ResultStatus = "ATKT"
)

// Valid reports whether s is one of the known result statuses.
func (s ResultStatus) Valid() bool {
	switch s {
	case ResultPass, ResultFail, ResultATKT:
		return true
	}
	return false
}

// PaymentStatus is the state recorded on a fee row. The schema does not
// tie it to payment_date; both are stored as given.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

// Valid reports whether s is one of the known payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}
