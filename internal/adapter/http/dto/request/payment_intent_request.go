package request

// CreatePaymentIntentRequest is the `POST /api/create-payment-intent` body.
//
// Amount is in centavos; a fractional JSON number fails binding.
type CreatePaymentIntentRequest struct {
	Amount      *int64 `json:"amount" binding:"required"`
	Description string `json:"description"`
}
