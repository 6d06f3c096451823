package entities

import "time"

// PaymentStatus is the local lifecycle state of a mint payment.
//
// Success path: PENDING -> PROCESSING -> COMPLETED.
// PENDING/PROCESSING may also end in EXPIRED or FAILED.
// COMPLETED, EXPIRED and FAILED are terminal: once reached, no further
// transition is accepted.

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "PENDING"
	PaymentStatusProcessing PaymentStatus = "PROCESSING"
	PaymentStatusCompleted  PaymentStatus = "COMPLETED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// Terminal reports whether no further transitions are accepted from s.
func (s PaymentStatus) Terminal() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusExpired, PaymentStatusFailed:
		return true
	}
	return false
}

// Active reports whether s counts against the one-active-payment-per-team rule.
func (s PaymentStatus) Active() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusProcessing, PaymentStatusCompleted:
		return true
	}
	return false
}

// Amount bounds accepted by the minting provider (IDR, whole units).
const (
	MinPaymentAmount int64 = 20_000
	MaxPaymentAmount int64 = 1_000_000_000
)

// Payment is the registration payment persisted per team.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (team_id-index): team_id
//   - GSI2 (external_id-index): external_id
//
// Correlation identifiers:
//   - ExternalID is the provider's "reference", sent back in webhook events.
//   - MerchantOrderID is the provider's order id, the canonical key for
//     transaction-history polling. The two are distinct and must not be mixed.
//
// Payments are never deleted; terminal records stay as the audit trail.

type Payment struct {
	ID              string        `json:"id"`
	TeamID          string        `json:"team_id"`
	Amount          int64         `json:"amount"`
	Status          PaymentStatus `json:"status"`
	ExternalID      string        `json:"external_id"`
	MerchantOrderID string        `json:"merchant_order_id"`
	WalletAddress   string        `json:"wallet_address"`
	CreatedAt       time.Time     `json:"created_at"`
	ExpiredAt       time.Time     `json:"expired_at"`
	PaidAt          *time.Time    `json:"paid_at,omitempty"`
	MintingTxHash   string        `json:"minting_tx_hash,omitempty"`
}
