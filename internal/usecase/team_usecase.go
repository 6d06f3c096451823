package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lomba_backend/internal/domain/entities"
	"lomba_backend/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrTeamNotFound        = errors.New("team not found")
	ErrInvalidTeamName     = errors.New("invalid team name")
	ErrInvalidCategory     = errors.New("invalid competition category")
	ErrTeamLocked          = errors.New("team is verified or paid and can no longer be edited")
	ErrTeamAlreadyReviewed = errors.New("team verification already decided")
)

type ITeamUseCase interface {
	Create(ctx context.Context, name string, category entities.CompetitionCategory, leaderID string) (entities.Team, error)
	GetByID(ctx context.Context, id, requesterID string) (entities.Team, error)
	ListMine(ctx context.Context, leaderID string, page, limit int) ([]entities.Team, int, error)
	Update(ctx context.Context, id, requesterID, name string, category entities.CompetitionCategory) (entities.Team, error)
	AddMember(ctx context.Context, id, requesterID string, m entities.Member) (entities.Team, error)
	AdminList(ctx context.Context, page, limit int) ([]entities.Team, int, error)
	AdminVerify(ctx context.Context, id string) (entities.Team, error)
	AdminReject(ctx context.Context, id string) (entities.Team, error)
}

type TeamUseCase struct {
	repo interfaces.ITeamRepository
}

var _ ITeamUseCase = (*TeamUseCase)(nil)

func NewTeamUseCase(repo interfaces.ITeamRepository) *TeamUseCase {
	return &TeamUseCase{repo: repo}
}

func validCategory(c entities.CompetitionCategory) bool {
	switch c {
	case entities.CategoryCompetitive, entities.CategoryNonCompetitive, entities.CategoryWorkshop, entities.CategorySeminar:
		return true
	}
	return false
}

func (u *TeamUseCase) Create(ctx context.Context, name string, category entities.CompetitionCategory, leaderID string) (entities.Team, error) {
	name = strings.TrimSpace(name)
	if len(name) < 3 {
		return entities.Team{}, ErrInvalidTeamName
	}
	if !validCategory(category) {
		return entities.Team{}, ErrInvalidCategory
	}

	now := time.Now().UTC()
	t := entities.Team{
		ID:                 uuid.NewString(),
		Name:               name,
		Category:           category,
		LeaderID:           leaderID,
		VerificationStatus: entities.VerificationStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	created, err := u.repo.Create(ctx, t)
	if err != nil {
		return entities.Team{}, err
	}
	log.Printf("[team][usecase] created team_id=%s leader_id=%s category=%s", created.ID, leaderID, category)
	return created, nil
}

func (u *TeamUseCase) GetByID(ctx context.Context, id, requesterID string) (entities.Team, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Team{}, err
	}
	if t.ID == "" {
		return entities.Team{}, ErrTeamNotFound
	}
	if t.LeaderID != requesterID {
		return entities.Team{}, ErrNotTeamLeader
	}
	return t, nil
}

func (u *TeamUseCase) ListMine(ctx context.Context, leaderID string, page, limit int) ([]entities.Team, int, error) {
	return u.repo.ListByLeaderID(ctx, leaderID, page, limit)
}

func (u *TeamUseCase) Update(ctx context.Context, id, requesterID, name string, category entities.CompetitionCategory) (entities.Team, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Team{}, err
	}
	if t.ID == "" {
		return entities.Team{}, ErrTeamNotFound
	}
	if t.LeaderID != requesterID {
		return entities.Team{}, ErrNotTeamLeader
	}
	if t.LockedForLeader() {
		return entities.Team{}, ErrTeamLocked
	}

	if name = strings.TrimSpace(name); name == "" {
		name = t.Name
	} else if len(name) < 3 {
		return entities.Team{}, ErrInvalidTeamName
	}
	if category == "" {
		category = t.Category
	} else if !validCategory(category) {
		return entities.Team{}, ErrInvalidCategory
	}

	return u.repo.UpdateProfile(ctx, id, name, category)
}

func (u *TeamUseCase) AddMember(ctx context.Context, id, requesterID string, m entities.Member) (entities.Team, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Team{}, err
	}
	if t.ID == "" {
		return entities.Team{}, ErrTeamNotFound
	}
	if t.LeaderID != requesterID {
		return entities.Team{}, ErrNotTeamLeader
	}
	if t.LockedForLeader() {
		return entities.Team{}, ErrTeamLocked
	}

	return u.repo.AddMember(ctx, id, m)
}

func (u *TeamUseCase) AdminList(ctx context.Context, page, limit int) ([]entities.Team, int, error) {
	return u.repo.List(ctx, page, limit)
}

func (u *TeamUseCase) AdminVerify(ctx context.Context, id string) (entities.Team, error) {
	return u.review(ctx, id, entities.VerificationStatusVerified)
}

func (u *TeamUseCase) AdminReject(ctx context.Context, id string) (entities.Team, error) {
	return u.review(ctx, id, entities.VerificationStatusRejected)
}

func (u *TeamUseCase) review(ctx context.Context, id string, status entities.VerificationStatus) (entities.Team, error) {
	t, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Team{}, err
	}
	if t.ID == "" {
		return entities.Team{}, ErrTeamNotFound
	}
	if t.VerificationStatus != entities.VerificationStatusPending {
		return entities.Team{}, ErrTeamAlreadyReviewed
	}

	updated, err := u.repo.UpdateVerificationStatus(ctx, id, status)
	if err != nil {
		return entities.Team{}, err
	}
	log.Printf("[team][admin] review team_id=%s status=%s", id, status)
	return updated, nil
}
