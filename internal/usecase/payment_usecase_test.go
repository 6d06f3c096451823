package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"
	mock_interfaces "lomba_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	repo     *mock_interfaces.MockIPaymentRepository
	teamRepo *mock_interfaces.MockITeamRepository
	userRepo *mock_interfaces.MockIUserRepository
	provider *mock_interfaces.MockIMintingProvider
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := paymentMocks{
		repo:     mock_interfaces.NewMockIPaymentRepository(ctrl),
		teamRepo: mock_interfaces.NewMockITeamRepository(ctrl),
		userRepo: mock_interfaces.NewMockIUserRepository(ctrl),
		provider: mock_interfaces.NewMockIMintingProvider(ctrl),
	}
	return NewPaymentUseCase(m.repo, m.teamRepo, m.userRepo, m.provider), m
}

func TestPaymentUseCase_Create_Validations(t *testing.T) {
	t.Run("amount below minimum", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 19999, RequesterID: "user-1"})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("amount above maximum", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 1_000_000_001, RequesterID: "user-1"})
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("expiry out of bounds", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, ExpiryHours: 48, RequesterID: "user-1"})
		if !errors.Is(err, ErrInvalidExpiryPeriod) {
			t.Fatalf("expected ErrInvalidExpiryPeriod, got %v", err)
		}
	})

	t.Run("team not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{}, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
		if !errors.Is(err, ErrPaymentTeamNotFound) {
			t.Fatalf("expected ErrPaymentTeamNotFound, got %v", err)
		}
	})

	t.Run("requester is not leader", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-2"}, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
		if !errors.Is(err, ErrNotTeamLeader) {
			t.Fatalf("expected ErrNotTeamLeader, got %v", err)
		}
	})
}

func TestPaymentUseCase_Create_ActivePaymentConflict(t *testing.T) {
	// A second create for a team with a PENDING payment must fail Conflict
	// without ever reaching the provider.
	uc, m := newPaymentUseCaseForTest(t)
	m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1"}, nil)
	m.repo.EXPECT().FindActiveByTeamID(gomock.Any(), "team-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending}, nil)

	_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
	if !errors.Is(err, ErrActivePaymentExists) {
		t.Fatalf("expected ErrActivePaymentExists, got %v", err)
	}
}

func TestPaymentUseCase_Create_Success(t *testing.T) {
	uc, m := newPaymentUseCaseForTest(t)
	m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", Name: "Garuda", LeaderID: "user-1"}, nil)
	m.repo.EXPECT().FindActiveByTeamID(gomock.Any(), "team-1").Return(entities.Payment{}, nil)
	m.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Name: "Budi", Email: "budi@test.com"}, nil)

	var gotParams interfaces.MintRequestParams
	m.provider.EXPECT().CreateMintRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params interfaces.MintRequestParams) (interfaces.MintRegistration, error) {
			gotParams = params
			return interfaces.MintRegistration{
				Reference:       "REF-1",
				MerchantOrderID: "MO-1",
				PaymentURL:      "https://pay/1",
				Amount:          "50000",
				WalletAddress:   "0xwallet",
			}, nil
		})

	var persisted entities.Payment
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) {
			persisted = p
			return p, nil
		})

	before := time.Now().UTC()
	out, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotParams.Amount != 50000 || gotParams.ExpiryHours != 24 {
		t.Fatalf("unexpected mint params: %+v", gotParams)
	}
	if gotParams.CustomerEmail != "budi@test.com" {
		t.Fatalf("expected leader email on mint params, got %q", gotParams.CustomerEmail)
	}
	if persisted.Status != entities.PaymentStatusPending {
		t.Fatalf("expected PENDING, got %s", persisted.Status)
	}
	if persisted.ExternalID != "REF-1" || persisted.MerchantOrderID != "MO-1" {
		t.Fatalf("correlation ids not persisted: %+v", persisted)
	}
	wantExpiry := before.Add(24 * time.Hour)
	if persisted.ExpiredAt.Before(wantExpiry.Add(-time.Minute)) || persisted.ExpiredAt.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("expected expiry around now+24h, got %s", persisted.ExpiredAt)
	}
	if out.PaymentURL != "https://pay/1" {
		t.Fatalf("expected payment url, got %q", out.PaymentURL)
	}
}

func TestPaymentUseCase_Create_ProviderFailureIsFailClosed(t *testing.T) {
	// If the mint request fails, nothing may be persisted locally.
	uc, m := newPaymentUseCaseForTest(t)
	m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1"}, nil)
	m.repo.EXPECT().FindActiveByTeamID(gomock.Any(), "team-1").Return(entities.Payment{}, nil)
	m.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)
	m.provider.EXPECT().CreateMintRequest(gomock.Any(), gomock.Any()).Return(interfaces.MintRegistration{}, errors.New("provider down"))

	_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
	if err == nil || err.Error() != "provider down" {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestPaymentUseCase_Create_LostMarkerRace(t *testing.T) {
	uc, m := newPaymentUseCaseForTest(t)
	m.teamRepo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1"}, nil)
	m.repo.EXPECT().FindActiveByTeamID(gomock.Any(), "team-1").Return(entities.Payment{}, nil)
	m.userRepo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{}, nil)
	m.provider.EXPECT().CreateMintRequest(gomock.Any(), gomock.Any()).Return(interfaces.MintRegistration{Reference: "REF-1", MerchantOrderID: "MO-1"}, nil)
	m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrDuplicateActivePayment)

	_, err := uc.Create(context.Background(), CreatePaymentInput{TeamID: "team-1", Amount: 50000, RequesterID: "user-1"})
	if !errors.Is(err, ErrActivePaymentExists) {
		t.Fatalf("expected ErrActivePaymentExists, got %v", err)
	}
}

func TestPaymentUseCase_ApplyWebhookEvent(t *testing.T) {
	t.Run("missing reference", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.ApplyWebhookEvent(context.Background(), "", "PAID", nil)
		if !errors.Is(err, ErrMissingReference) {
			t.Fatalf("expected ErrMissingReference, got %v", err)
		}
	})

	t.Run("unknown payment", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-x").Return(entities.Payment{}, nil)

		_, err := uc.ApplyWebhookEvent(context.Background(), "REF-x", "PAID", nil)
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("PAID moves PENDING to PROCESSING", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		pending := entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusPending, ExternalID: "REF-1"}
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusProcessing, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusProcessing}, nil)

		p, err := uc.ApplyWebhookEvent(context.Background(), "REF-1", "PAID", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusProcessing {
			t.Fatalf("expected PROCESSING, got %s", p.Status)
		}
	})

	t.Run("replayed PAID event is a no-op", func(t *testing.T) {
		// Second delivery of the same webhook: payment already PROCESSING,
		// no store write happens, end state is unchanged.
		uc, m := newPaymentUseCaseForTest(t)
		processing := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusProcessing, ExternalID: "REF-1"}
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-1").Return(processing, nil)

		p, err := uc.ApplyWebhookEvent(context.Background(), "REF-1", "PAID", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusProcessing {
			t.Fatalf("expected PROCESSING, got %s", p.Status)
		}
	})

	t.Run("terminal payment ignores further events", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		done := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted, ExternalID: "REF-1"}
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-1").Return(done, nil)

		p, err := uc.ApplyWebhookEvent(context.Background(), "REF-1", "EXPIRED", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected COMPLETED to stick, got %s", p.Status)
		}
	})

	t.Run("unrecognized status is a no-op", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		pending := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusPending, ExternalID: "REF-1"}
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-1").Return(pending, nil)

		p, err := uc.ApplyWebhookEvent(context.Background(), "REF-1", "SOMETHING_NEW", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusPending {
			t.Fatalf("expected PENDING unchanged, got %s", p.Status)
		}
	})

	t.Run("EXPIRED releases the team marker", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		pending := entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusPending, ExternalID: "REF-1"}
		m.repo.EXPECT().GetByExternalID(gomock.Any(), "REF-1").Return(pending, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusExpired, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusExpired}, nil)
		m.teamRepo.EXPECT().ClearActivePayment(gomock.Any(), "team-1").Return(nil)

		_, err := uc.ApplyWebhookEvent(context.Background(), "REF-1", "EXPIRED", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Reconcile(t *testing.T) {
	processing := entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusProcessing, MerchantOrderID: "MO-1"}

	t.Run("unknown to provider is a silent no-op", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(nil, nil)

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("terminal payment skips the provider", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		done := entities.Payment{ID: "pay-1", Status: entities.PaymentStatusFailed}
		if err := uc.Reconcile(context.Background(), done); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("minted with tx hash completes and marks team paid", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		paidAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			MerchantOrderID: "MO-1",
			PaymentStatus:   interfaces.ProviderPaymentPaid,
			MintStatus:      interfaces.ProviderMintMinted,
			TxHash:          "0xabc",
			UpdatedAt:       paidAt,
		}, nil)

		var gotFields interfaces.PaymentUpdateFields
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusProcessing, entities.PaymentStatusCompleted, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, _, _ entities.PaymentStatus, fields interfaces.PaymentUpdateFields) (entities.Payment, error) {
				gotFields = fields
				return entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusCompleted, MintingTxHash: fields.MintingTxHash}, nil
			})
		m.teamRepo.EXPECT().MarkPaid(gomock.Any(), "team-1").Return(nil)

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotFields.MintingTxHash != "0xabc" {
			t.Fatalf("expected tx hash recorded, got %q", gotFields.MintingTxHash)
		}
		if gotFields.PaidAt == nil || !gotFields.PaidAt.Equal(paidAt) {
			t.Fatalf("expected paidAt from provider record, got %v", gotFields.PaidAt)
		}
	})

	t.Run("paid but still minting stays PROCESSING", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		pending := entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusPending, MerchantOrderID: "MO-1"}
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			PaymentStatus: interfaces.ProviderPaymentPaid,
			MintStatus:    interfaces.ProviderMintProcessing,
			UpdatedAt:     time.Now().UTC(),
		}, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusProcessing, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusProcessing}, nil)

		if err := uc.Reconcile(context.Background(), pending); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mint failure fails the payment", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			PaymentStatus: interfaces.ProviderPaymentPaid,
			MintStatus:    interfaces.ProviderMintFailed,
		}, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusProcessing, entities.PaymentStatusFailed, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusFailed}, nil)
		m.teamRepo.EXPECT().ClearActivePayment(gomock.Any(), "team-1").Return(nil)

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("waiting for payment is a no-op", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			PaymentStatus: interfaces.ProviderPaymentWaiting,
		}, nil)

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("lost guard race is benign", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			PaymentStatus: interfaces.ProviderPaymentExpired,
		}, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusProcessing, entities.PaymentStatusExpired, gomock.Any()).
			Return(entities.Payment{}, interfaces.ErrStatusRaced)

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("expected lost race to be swallowed, got %v", err)
		}
	})

	t.Run("mark paid failure does not fail reconciliation", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(&interfaces.ProviderTransaction{
			PaymentStatus: interfaces.ProviderPaymentPaid,
			MintStatus:    interfaces.ProviderMintMinted,
			TxHash:        "0xabc",
			UpdatedAt:     time.Now().UTC(),
		}, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusProcessing, entities.PaymentStatusCompleted, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusCompleted}, nil)
		m.teamRepo.EXPECT().MarkPaid(gomock.Any(), "team-1").Return(errors.New("dynamo down"))

		if err := uc.Reconcile(context.Background(), processing); err != nil {
			t.Fatalf("expected best-effort flag write, got %v", err)
		}
	})

	t.Run("provider failure propagates to the sweep", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.provider.EXPECT().GetTransactionStatus(gomock.Any(), "MO-1").Return(nil, errors.New("timeout"))

		if err := uc.Reconcile(context.Background(), processing); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestPaymentUseCase_AdminVerify(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.Payment{}, nil)

		_, err := uc.AdminVerify(context.Background(), "pay-x")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("forces completion and marks team paid", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusPending}, nil)
		m.repo.EXPECT().UpdateStatusGuarded(gomock.Any(), "pay-1", entities.PaymentStatusPending, entities.PaymentStatusCompleted, gomock.Any()).
			Return(entities.Payment{ID: "pay-1", TeamID: "team-1", Status: entities.PaymentStatusCompleted}, nil)
		m.teamRepo.EXPECT().MarkPaid(gomock.Any(), "team-1").Return(nil)

		p, err := uc.AdminVerify(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", p.Status)
		}
	})

	t.Run("already completed is idempotent", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.Payment{ID: "pay-1", Status: entities.PaymentStatusCompleted}, nil)

		p, err := uc.AdminVerify(context.Background(), "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected COMPLETED, got %s", p.Status)
		}
	})
}
