package response

import (
	"time"

	"lomba_backend/internal/domain/entities"
)

type TransactionResponse struct {
	ID              string     `json:"id"`
	TeamID          string     `json:"team_id"`
	Amount          int64      `json:"amount"`
	Status          string     `json:"status"`
	Reference       string     `json:"reference"`
	MerchantOrderID string     `json:"merchant_order_id"`
	WalletAddress   string     `json:"wallet_address,omitempty"`
	PaymentURL      string     `json:"payment_url,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiredAt       time.Time  `json:"expired_at"`
	PaidAt          *time.Time `json:"paid_at,omitempty"`
	MintingTxHash   string     `json:"minting_tx_hash,omitempty"`
}

func FromPayment(p entities.Payment) TransactionResponse {
	return TransactionResponse{
		ID:              p.ID,
		TeamID:          p.TeamID,
		Amount:          p.Amount,
		Status:          string(p.Status),
		Reference:       p.ExternalID,
		MerchantOrderID: p.MerchantOrderID,
		WalletAddress:   p.WalletAddress,
		CreatedAt:       p.CreatedAt,
		ExpiredAt:       p.ExpiredAt,
		PaidAt:          p.PaidAt,
		MintingTxHash:   p.MintingTxHash,
	}
}

// FromCreatedPayment includes the provider checkout URL, which only exists at
// creation time and is never persisted.
func FromCreatedPayment(p entities.Payment, paymentURL string) TransactionResponse {
	out := FromPayment(p)
	out.PaymentURL = paymentURL
	return out
}

func FromPayments(payments []entities.Payment) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
