package dto

// CreatePaymentOrderRequest opens a gateway order for the amount in whole
// currency units.
type CreatePaymentOrderRequest struct {
	Amount int64 `json:"amount"`
}

// GatewayOrderResponse mirrors the gateway order the storefront pays against.
type GatewayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// VerifyPaymentRequest carries the gateway callback fields to verify.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}
