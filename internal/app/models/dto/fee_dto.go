package dto

// CreateFeeRequest represents a fee charge raised against an admission
type CreateFeeRequest struct {
	AdmissionID   int64   `json:"admissionId" binding:"required,gt=0"`
	FeeCategory   string  `json:"feeCategory" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"paymentMethod" binding:"required"`
}

// RecordPaymentRequest represents the settlement of a pending fee
type RecordPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=Paid Failed"`
}

// FeeResponse represents a fee record
type FeeResponse struct {
	ID            int64   `json:"id"`
	AdmissionID   int64   `json:"admissionId"`
	StudentName   string  `json:"studentName,omitempty"`
	FeeCategory   string  `json:"feeCategory"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentDate   *string `json:"paymentDate,omitempty"`
	CreatedAt     string  `json:"createdAt"`
}

// FeeListResponse represents the fee records of an admission
type FeeListResponse struct {
	Fees []FeeResponse `json:"fees"`
}
