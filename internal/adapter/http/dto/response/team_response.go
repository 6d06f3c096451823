package response

import (
	"time"

	"lomba_backend/internal/domain/entities"
)

type MemberResponse struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	BirthDate      string `json:"birth_date,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
	Institution    string `json:"institution,omitempty"`
	IsLeader       bool   `json:"is_leader"`
}

type TeamResponse struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Category           string           `json:"category"`
	LeaderID           string           `json:"leader_id"`
	VerificationStatus string           `json:"verification_status"`
	Paid               bool             `json:"paid"`
	Members            []MemberResponse `json:"members"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

func FromTeam(t entities.Team) TeamResponse {
	members := make([]MemberResponse, 0, len(t.Members))
	for _, m := range t.Members {
		members = append(members, MemberResponse{
			Name:           m.Name,
			Email:          m.Email,
			Phone:          m.Phone,
			BirthDate:      m.BirthDate,
			EducationLevel: m.EducationLevel,
			Institution:    m.Institution,
			IsLeader:       m.IsLeader,
		})
	}
	return TeamResponse{
		ID:                 t.ID,
		Name:               t.Name,
		Category:           string(t.Category),
		LeaderID:           t.LeaderID,
		VerificationStatus: string(t.VerificationStatus),
		Paid:               t.Paid,
		Members:            members,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func FromTeams(teams []entities.Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		out = append(out, FromTeam(t))
	}
	return out
}
