package interfaces

import (
	"context"
	"errors"
	"time"

	"lomba_backend/internal/domain/entities"
)

var (
	// ErrStatusRaced is returned by UpdateStatusGuarded when the expected
	// current status no longer matches, i.e. a concurrent transition won.
	ErrStatusRaced = errors.New("payment status guard mismatch")

	// ErrDuplicateActivePayment is returned by Create when the owning team
	// already holds an active payment marker.
	ErrDuplicateActivePayment = errors.New("team already has an active payment")
)

// PaymentUpdateFields are the extra attributes a status transition may set.
type PaymentUpdateFields struct {
	PaidAt        *time.Time
	MintingTxHash string
}

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Get/Find methods return a zero-value Payment (ID == "") when nothing
// matches; callers check ID rather than a not-found error.

type IPaymentRepository interface {
	// Create inserts the payment and claims the team's active-payment marker
	// in a single transaction.
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByExternalID(ctx context.Context, externalID string) (entities.Payment, error)
	FindActiveByTeamID(ctx context.Context, teamID string) (entities.Payment, error)
	ListByTeamID(ctx context.Context, teamID string) ([]entities.Payment, error)
	ListNonTerminal(ctx context.Context) ([]entities.Payment, error)
	List(ctx context.Context, status entities.PaymentStatus, page, limit int) ([]entities.Payment, int, error)
	// UpdateStatusGuarded applies a compare-and-swap on the status attribute.
	UpdateStatusGuarded(ctx context.Context, id string, expected, next entities.PaymentStatus, fields PaymentUpdateFields) (entities.Payment, error)
}
