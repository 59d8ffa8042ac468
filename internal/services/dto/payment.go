package dto

// RecordPaymentRequest books a payment against a case and decrements
// its balance. Cheque fields are required for cheque payments only.
type RecordPaymentRequest struct {
	CaseID         uint    `json:"case_id" validate:"required"`
	Amount         float64 `json:"payment_amount" validate:"required,gt=0"`
	Type           string  `json:"payment_type" validate:"required,oneof=Cash Cheque"`
	ChequeName     string  `json:"cheque_name"`
	ChequeNumber   string  `json:"cheque_number"`
	ChequeBranch   string  `json:"cheque_branch"`
	ChequeLocation string  `json:"cheque_location"`
}
