package models

import "time"

// Fee defines a payment record against an admission based on the 'fee'
// table. payment_date is independent of payment_status; the schema does
// not force one to follow the other.
type Fee struct {
	ID            int64         `json:"id" db:"id"`
	AdmissionID   int64         `json:"admissionId" db:"admission_id"`
	FeeCategory   string        `json:"feeCategory" db:"fee_category" example:"Tuition Fee"`
	Amount        float64       `json:"amount" db:"amount" example:"20000"`
	PaymentMethod string        `json:"paymentMethod" db:"payment_method" example:"UPI"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status" example:"Pending"`
	PaymentDate   *time.Time    `json:"paymentDate,omitempty" db:"payment_date"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`

	// Relation, populated by read-side join
	StudentName string `json:"studentName,omitempty"`
}
