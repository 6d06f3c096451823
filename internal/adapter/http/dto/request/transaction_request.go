package request

import "time"

type CreateTransactionRequest struct {
	TeamID         string `json:"team_id" binding:"required"`
	Amount         int64  `json:"amount" binding:"required"`
	ExpiryPeriod   int    `json:"expiry_period"`
	ProductDetails string `json:"product_details"`
}

// PaymentWebhookRequest is the provider's asynchronous payment notification.
// The reference matches the external_id stored at mint-request time.
type PaymentWebhookRequest struct {
	Reference string     `json:"reference"`
	Status    string     `json:"status"`
	PaidAt    *time.Time `json:"paid_at"`
}
