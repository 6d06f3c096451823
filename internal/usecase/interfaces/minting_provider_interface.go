package interfaces

import (
	"context"
	"encoding/json"
	"time"
)

// Provider payment-status vocabulary (transaction-history records).
const (
	ProviderPaymentPaid    = "PAID"
	ProviderPaymentWaiting = "WAITING_FOR_PAYMENT"
	ProviderPaymentExpired = "EXPIRED"
)

// Provider mint-status vocabulary.
const (
	ProviderMintNotAvailable = "NOT_AVAILABLE"
	ProviderMintProcessing   = "PROCESSING"
	ProviderMintMinted       = "MINTED"
	ProviderMintFailed       = "FAILED"
	ProviderMintRejected     = "REJECTED"
	ProviderMintRefund       = "REFUND"
)

// MintRequestParams is what the lifecycle engine needs to register a mint
// request; wallet address and chain id come from the provider client's own
// configuration.
type MintRequestParams struct {
	Amount         int64
	ExpiryHours    int
	ProductDetails string
	CustomerName   string
	CustomerEmail  string
}

// MintRegistration is the provider's answer to a mint request.
type MintRegistration struct {
	Reference       string
	MerchantOrderID string
	PaymentURL      string
	Amount          string
	WalletAddress   string
}

// ProviderTransaction is one transaction-history record.
type ProviderTransaction struct {
	MerchantOrderID string
	Reference       string
	PaymentStatus   string
	MintStatus      string
	TxHash          string
	UpdatedAt       time.Time
}

// IMintingProvider abstracts the external fiat-to-token minting API.
//
// GetTransactionStatus returns (nil, nil) when the provider does not know the
// order yet; the provider ingests payments with some lag, so "unknown" is an
// expected answer, not a failure.

type IMintingProvider interface {
	CreateMintRequest(ctx context.Context, params MintRequestParams) (MintRegistration, error)
	GetTransactionStatus(ctx context.Context, merchantOrderID string) (*ProviderTransaction, error)
	GetPaymentMethods(ctx context.Context) (json.RawMessage, error)
}
