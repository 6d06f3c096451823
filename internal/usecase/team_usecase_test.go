package usecase

import (
	"context"
	"errors"
	"testing"

	"lomba_backend/internal/domain/entities"
	mock_interfaces "lomba_backend/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newTeamUseCaseForTest(t *testing.T) (*TeamUseCase, *mock_interfaces.MockITeamRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockITeamRepository(ctrl)
	return NewTeamUseCase(repo), repo
}

func TestTeamUseCase_Create(t *testing.T) {
	t.Run("name too short", func(t *testing.T) {
		uc, _ := newTeamUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "ab", entities.CategoryCompetitive, "user-1")
		if !errors.Is(err, ErrInvalidTeamName) {
			t.Fatalf("expected ErrInvalidTeamName, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _ := newTeamUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "Garuda", entities.CompetitionCategory("ESPORTS"), "user-1")
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("success starts PENDING", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		var persisted entities.Team
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, team entities.Team) (entities.Team, error) {
				persisted = team
				return team, nil
			})

		out, err := uc.Create(context.Background(), "  Garuda  ", entities.CategoryWorkshop, "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if persisted.Name != "Garuda" {
			t.Fatalf("expected trimmed name, got %q", persisted.Name)
		}
		if persisted.VerificationStatus != entities.VerificationStatusPending {
			t.Fatalf("expected PENDING verification, got %s", persisted.VerificationStatus)
		}
		if out.LeaderID != "user-1" {
			t.Fatalf("expected leader user-1, got %q", out.LeaderID)
		}
	})
}

func TestTeamUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-x").Return(entities.Team{}, nil)

		_, err := uc.Update(context.Background(), "team-x", "user-1", "New Name", "")
		if !errors.Is(err, ErrTeamNotFound) {
			t.Fatalf("expected ErrTeamNotFound, got %v", err)
		}
	})

	t.Run("only the leader may edit", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-2"}, nil)

		_, err := uc.Update(context.Background(), "team-1", "user-1", "New Name", "")
		if !errors.Is(err, ErrNotTeamLeader) {
			t.Fatalf("expected ErrNotTeamLeader, got %v", err)
		}
	})

	t.Run("paid team is locked", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1", Paid: true}, nil)

		_, err := uc.Update(context.Background(), "team-1", "user-1", "New Name", "")
		if !errors.Is(err, ErrTeamLocked) {
			t.Fatalf("expected ErrTeamLocked, got %v", err)
		}
	})

	t.Run("verified team is locked", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1", VerificationStatus: entities.VerificationStatusVerified}, nil)

		_, err := uc.Update(context.Background(), "team-1", "user-1", "New Name", "")
		if !errors.Is(err, ErrTeamLocked) {
			t.Fatalf("expected ErrTeamLocked, got %v", err)
		}
	})

	t.Run("empty fields keep current values", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		current := entities.Team{ID: "team-1", Name: "Garuda", Category: entities.CategoryCompetitive, LeaderID: "user-1", VerificationStatus: entities.VerificationStatusPending}
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(current, nil)
		repo.EXPECT().UpdateProfile(gomock.Any(), "team-1", "Garuda", entities.CategoryCompetitive).Return(current, nil)

		if _, err := uc.Update(context.Background(), "team-1", "user-1", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestTeamUseCase_AddMember(t *testing.T) {
	t.Run("locked after payment", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1", Paid: true}, nil)

		_, err := uc.AddMember(context.Background(), "team-1", "user-1", entities.Member{Name: "Sari"})
		if !errors.Is(err, ErrTeamLocked) {
			t.Fatalf("expected ErrTeamLocked, got %v", err)
		}
	})

	t.Run("leader adds a member", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		member := entities.Member{Name: "Sari", Email: "sari@test.com"}
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", LeaderID: "user-1"}, nil)
		repo.EXPECT().AddMember(gomock.Any(), "team-1", member).Return(entities.Team{ID: "team-1", Members: []entities.Member{member}}, nil)

		out, err := uc.AddMember(context.Background(), "team-1", "user-1", member)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Members) != 1 {
			t.Fatalf("expected 1 member, got %d", len(out.Members))
		}
	})
}

func TestTeamUseCase_AdminReview(t *testing.T) {
	t.Run("verify pending team", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", VerificationStatus: entities.VerificationStatusPending}, nil)
		repo.EXPECT().UpdateVerificationStatus(gomock.Any(), "team-1", entities.VerificationStatusVerified).
			Return(entities.Team{ID: "team-1", VerificationStatus: entities.VerificationStatusVerified}, nil)

		out, err := uc.AdminVerify(context.Background(), "team-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.VerificationStatus != entities.VerificationStatusVerified {
			t.Fatalf("expected VERIFIED, got %s", out.VerificationStatus)
		}
	})

	t.Run("reject pending team", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", VerificationStatus: entities.VerificationStatusPending}, nil)
		repo.EXPECT().UpdateVerificationStatus(gomock.Any(), "team-1", entities.VerificationStatusRejected).
			Return(entities.Team{ID: "team-1", VerificationStatus: entities.VerificationStatusRejected}, nil)

		if _, err := uc.AdminReject(context.Background(), "team-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("decided team cannot be reviewed again", func(t *testing.T) {
		uc, repo := newTeamUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "team-1").Return(entities.Team{ID: "team-1", VerificationStatus: entities.VerificationStatusVerified}, nil)

		_, err := uc.AdminVerify(context.Background(), "team-1")
		if !errors.Is(err, ErrTeamAlreadyReviewed) {
			t.Fatalf("expected ErrTeamAlreadyReviewed, got %v", err)
		}
	})
}
