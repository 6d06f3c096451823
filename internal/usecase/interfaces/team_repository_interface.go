package interfaces

import (
	"context"

	"lomba_backend/internal/domain/entities"
)

// ITeamRepository abstracts DynamoDB persistence for Team.

type ITeamRepository interface {
	Create(ctx context.Context, t entities.Team) (entities.Team, error)
	GetByID(ctx context.Context, id string) (entities.Team, error)
	ListByLeaderID(ctx context.Context, leaderID string, page, limit int) ([]entities.Team, int, error)
	List(ctx context.Context, page, limit int) ([]entities.Team, int, error)
	UpdateProfile(ctx context.Context, id, name string, category entities.CompetitionCategory) (entities.Team, error)
	UpdateVerificationStatus(ctx context.Context, id string, status entities.VerificationStatus) (entities.Team, error)
	AddMember(ctx context.Context, id string, m entities.Member) (entities.Team, error)
	// MarkPaid sets the paid flag; re-derivable from payment status, so safe
	// to retry on later reconciliation passes.
	MarkPaid(ctx context.Context, id string) error
	// ClearActivePayment releases the active-payment marker after a payment
	// reaches EXPIRED or FAILED.
	ClearActivePayment(ctx context.Context, id string) error
}
