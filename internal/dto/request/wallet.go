package request

type TopupRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type ConfirmTopupRequest struct {
	PaymentIntentID string `json:"paymentIntentId" validate:"required"`
}
