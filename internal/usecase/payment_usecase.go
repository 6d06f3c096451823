package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentTeamNotFound  = errors.New("team not found")
	ErrNotTeamLeader        = errors.New("requester is not the team leader")
	ErrActivePaymentExists  = errors.New("team already has an active payment")
	ErrInvalidPaymentAmount = errors.New("payment amount out of bounds")
	ErrInvalidExpiryPeriod  = errors.New("expiry period out of bounds")
	ErrMissingReference     = errors.New("missing webhook reference")
)

const (
	defaultExpiryHours = 24
	maxExpiryHours     = 24
)

// IPaymentUseCase is the payment lifecycle engine.
//
// Three paths drive a payment forward — creation, webhook events and
// scheduled reconciliation — and all of them funnel status changes through
// the single transition chokepoint so the legal-transition rules live in one
// place.

type IPaymentUseCase interface {
	Create(ctx context.Context, in CreatePaymentInput) (CreatePaymentOutput, error)
	GetByID(ctx context.Context, id, requesterID string) (entities.Payment, error)
	ListByTeam(ctx context.Context, teamID, requesterID string) ([]entities.Payment, error)
	ApplyWebhookEvent(ctx context.Context, reference, providerStatus string, paidAt *time.Time) (entities.Payment, error)
	Reconcile(ctx context.Context, p entities.Payment) error
	AdminList(ctx context.Context, status entities.PaymentStatus, page, limit int) ([]entities.Payment, int, error)
	AdminVerify(ctx context.Context, id string) (entities.Payment, error)
	PaymentMethods(ctx context.Context) (json.RawMessage, error)
}

type CreatePaymentInput struct {
	TeamID         string
	Amount         int64
	ExpiryHours    int
	ProductDetails string
	RequesterID    string
}

type CreatePaymentOutput struct {
	Payment    entities.Payment
	PaymentURL string
}

type PaymentUseCase struct {
	repo     interfaces.IPaymentRepository
	teamRepo interfaces.ITeamRepository
	userRepo interfaces.IUserRepository
	provider interfaces.IMintingProvider
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, teamRepo interfaces.ITeamRepository, userRepo interfaces.IUserRepository, provider interfaces.IMintingProvider) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, teamRepo: teamRepo, userRepo: userRepo, provider: provider}
}

// Create registers a mint request with the provider and persists the PENDING
// payment. The provider is called before anything is written: if it fails, no
// local record exists, so there is never an orphan payment without an
// external counterpart.
func (u *PaymentUseCase) Create(ctx context.Context, in CreatePaymentInput) (CreatePaymentOutput, error) {
	log.Printf("[payment][usecase] create start team_id=%s amount=%d requester_id=%s", in.TeamID, in.Amount, in.RequesterID)

	if in.Amount < entities.MinPaymentAmount || in.Amount > entities.MaxPaymentAmount {
		return CreatePaymentOutput{}, ErrInvalidPaymentAmount
	}
	expiryHours := in.ExpiryHours
	if expiryHours == 0 {
		expiryHours = defaultExpiryHours
	}
	if expiryHours < 1 || expiryHours > maxExpiryHours {
		return CreatePaymentOutput{}, ErrInvalidExpiryPeriod
	}

	team, err := u.teamRepo.GetByID(ctx, in.TeamID)
	if err != nil {
		return CreatePaymentOutput{}, err
	}
	if team.ID == "" {
		return CreatePaymentOutput{}, ErrPaymentTeamNotFound
	}
	if team.LeaderID != in.RequesterID {
		return CreatePaymentOutput{}, ErrNotTeamLeader
	}

	active, err := u.repo.FindActiveByTeamID(ctx, in.TeamID)
	if err != nil {
		return CreatePaymentOutput{}, err
	}
	if active.ID != "" {
		log.Printf("[payment][usecase] create rejected: active payment exists team_id=%s payment_id=%s status=%s", in.TeamID, active.ID, active.Status)
		return CreatePaymentOutput{}, ErrActivePaymentExists
	}

	productDetails := in.ProductDetails
	if productDetails == "" {
		productDetails = fmt.Sprintf("Payment for team: %s", team.Name)
	}
	params := interfaces.MintRequestParams{
		Amount:         in.Amount,
		ExpiryHours:    expiryHours,
		ProductDetails: productDetails,
	}
	if leader, err := u.userRepo.GetByID(ctx, team.LeaderID); err == nil && leader.ID != "" {
		params.CustomerName = leader.Name
		params.CustomerEmail = leader.Email
	}

	reg, err := u.provider.CreateMintRequest(ctx, params)
	if err != nil {
		log.Printf("[payment][usecase] mint request failed team_id=%s err=%v", in.TeamID, err)
		return CreatePaymentOutput{}, err
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:              uuid.NewString(),
		TeamID:          in.TeamID,
		Amount:          in.Amount,
		Status:          entities.PaymentStatusPending,
		ExternalID:      reg.Reference,
		MerchantOrderID: reg.MerchantOrderID,
		WalletAddress:   reg.WalletAddress,
		CreatedAt:       now,
		ExpiredAt:       now.Add(time.Duration(expiryHours) * time.Hour),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		if errors.Is(err, interfaces.ErrDuplicateActivePayment) {
			log.Printf("[payment][usecase] create lost race on active marker team_id=%s", in.TeamID)
			return CreatePaymentOutput{}, ErrActivePaymentExists
		}
		return CreatePaymentOutput{}, err
	}
	log.Printf("[payment][usecase] create success payment_id=%s team_id=%s reference=%s merchant_order_id=%s", created.ID, in.TeamID, created.ExternalID, created.MerchantOrderID)

	return CreatePaymentOutput{Payment: created, PaymentURL: reg.PaymentURL}, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id, requesterID string) (entities.Payment, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	team, err := u.teamRepo.GetByID(ctx, p.TeamID)
	if err != nil {
		return entities.Payment{}, err
	}
	if team.LeaderID != requesterID {
		return entities.Payment{}, ErrNotTeamLeader
	}
	return p, nil
}

func (u *PaymentUseCase) ListByTeam(ctx context.Context, teamID, requesterID string) ([]entities.Payment, error) {
	team, err := u.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.ID == "" {
		return nil, ErrPaymentTeamNotFound
	}
	if team.LeaderID != requesterID {
		return nil, ErrNotTeamLeader
	}
	return u.repo.ListByTeamID(ctx, teamID)
}

// ApplyWebhookEvent maps an asynchronous provider callback onto the local
// state machine. Unrecognized statuses are a deliberate no-op: the scheduler
// is the backstop and will catch up on the next sweep.
func (u *PaymentUseCase) ApplyWebhookEvent(ctx context.Context, reference, providerStatus string, paidAt *time.Time) (entities.Payment, error) {
	if reference == "" {
		return entities.Payment{}, ErrMissingReference
	}

	p, err := u.repo.GetByExternalID(ctx, reference)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	var target entities.PaymentStatus
	switch providerStatus {
	case interfaces.ProviderPaymentPaid:
		// Paid fiat-side; minting is confirmed later by reconciliation.
		target = entities.PaymentStatusProcessing
	case interfaces.ProviderPaymentExpired:
		target = entities.PaymentStatusExpired
	case "FAILED":
		target = entities.PaymentStatusFailed
	default:
		log.Printf("[payment][webhook] ignoring status %q payment_id=%s", providerStatus, p.ID)
		return p, nil
	}

	return u.transition(ctx, p, target, interfaces.PaymentUpdateFields{PaidAt: paidAt})
}

// Reconcile polls the provider for one payment and applies whatever truth it
// reports. An order the provider does not know yet is normal (ingestion lag)
// and leaves the payment untouched for the next sweep.
func (u *PaymentUseCase) Reconcile(ctx context.Context, p entities.Payment) error {
	if p.Status.Terminal() {
		return nil
	}

	tx, err := u.provider.GetTransactionStatus(ctx, p.MerchantOrderID)
	if err != nil {
		return err
	}
	if tx == nil {
		log.Printf("[payment][reconcile] not yet known to provider payment_id=%s merchant_order_id=%s", p.ID, p.MerchantOrderID)
		return nil
	}

	switch tx.PaymentStatus {
	case interfaces.ProviderPaymentPaid:
		paidAt := tx.UpdatedAt
		switch tx.MintStatus {
		case interfaces.ProviderMintMinted:
			if tx.TxHash == "" {
				log.Printf("[payment][reconcile] minted without tx hash, waiting payment_id=%s", p.ID)
				return nil
			}
			_, err = u.transition(ctx, p, entities.PaymentStatusCompleted, interfaces.PaymentUpdateFields{
				PaidAt:        &paidAt,
				MintingTxHash: tx.TxHash,
			})
			return err
		case interfaces.ProviderMintProcessing:
			_, err = u.transition(ctx, p, entities.PaymentStatusProcessing, interfaces.PaymentUpdateFields{PaidAt: &paidAt})
			return err
		case interfaces.ProviderMintFailed:
			_, err = u.transition(ctx, p, entities.PaymentStatusFailed, interfaces.PaymentUpdateFields{})
			return err
		default:
			log.Printf("[payment][reconcile] paid with mint status %q, no action payment_id=%s", tx.MintStatus, p.ID)
			return nil
		}
	case interfaces.ProviderPaymentExpired:
		_, err = u.transition(ctx, p, entities.PaymentStatusExpired, interfaces.PaymentUpdateFields{})
		return err
	default:
		// WAITING_FOR_PAYMENT and anything unrecognized: leave as-is.
		return nil
	}
}

func (u *PaymentUseCase) AdminList(ctx context.Context, status entities.PaymentStatus, page, limit int) ([]entities.Payment, int, error) {
	return u.repo.List(ctx, status, page, limit)
}

// AdminVerify forces a payment to COMPLETED without provider confirmation.
// Manual escape hatch for provider outages and bank-transfer fallbacks.
func (u *PaymentUseCase) AdminVerify(ctx context.Context, id string) (entities.Payment, error) {
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	now := time.Now().UTC()
	log.Printf("[payment][admin] manual verification payment_id=%s status=%s", p.ID, p.Status)
	return u.transition(ctx, p, entities.PaymentStatusCompleted, interfaces.PaymentUpdateFields{PaidAt: &now})
}

func (u *PaymentUseCase) PaymentMethods(ctx context.Context) (json.RawMessage, error) {
	return u.provider.GetPaymentMethods(ctx)
}

// transition is the single chokepoint for status changes.
//
// Terminal states are sticky and repeating the current status is a no-op, so
// replayed webhook events and overlapping sweeps converge instead of
// clobbering each other. The store-level status guard covers the remaining
// race window (webhook and scheduler landing on the same row); losing that
// race is benign and returns the payment unchanged.
func (u *PaymentUseCase) transition(ctx context.Context, p entities.Payment, target entities.PaymentStatus, fields interfaces.PaymentUpdateFields) (entities.Payment, error) {
	if p.Status.Terminal() {
		log.Printf("[payment][transition] ignoring %s -> %s: terminal payment_id=%s", p.Status, target, p.ID)
		return p, nil
	}
	if p.Status == target {
		return p, nil
	}

	updated, err := u.repo.UpdateStatusGuarded(ctx, p.ID, p.Status, target, fields)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusRaced) {
			log.Printf("[payment][transition] lost race %s -> %s payment_id=%s", p.Status, target, p.ID)
			return p, nil
		}
		return entities.Payment{}, err
	}
	log.Printf("[payment][transition] %s -> %s payment_id=%s", p.Status, target, p.ID)

	// Second write, deliberately best-effort: the team flag is re-derivable
	// from payment status, and the scheduler repairs it on a later pass if
	// this write fails.
	switch target {
	case entities.PaymentStatusCompleted:
		if err := u.teamRepo.MarkPaid(ctx, updated.TeamID); err != nil {
			log.Printf("[payment][transition] mark paid failed team_id=%s payment_id=%s err=%v", updated.TeamID, updated.ID, err)
		}
	case entities.PaymentStatusExpired, entities.PaymentStatusFailed:
		if err := u.teamRepo.ClearActivePayment(ctx, updated.TeamID); err != nil {
			log.Printf("[payment][transition] clear active marker failed team_id=%s payment_id=%s err=%v", updated.TeamID, updated.ID, err)
		}
	}

	return updated, nil
}
