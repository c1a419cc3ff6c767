package models

// VerificationRequest carries the payment widget callback payload. Field
// names follow the gateway's checkout contract verbatim.
type VerificationRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerificationResult is the outcome of a signature check.
type VerificationResult struct {
	Verified  bool
	Demo      bool
	OrderID   string
	PaymentID string
}
