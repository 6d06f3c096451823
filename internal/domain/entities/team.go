package entities

import "time"

// VerificationStatus is the admin review state of a team registration.

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusVerified VerificationStatus = "VERIFIED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
)

// CompetitionCategory is the competition track a team registers for.

type CompetitionCategory string

const (
	CategoryCompetitive    CompetitionCategory = "KOMPETITIF"
	CategoryNonCompetitive CompetitionCategory = "NON_KOMPETITIF"
	CategoryWorkshop       CompetitionCategory = "WORKSHOP"
	CategorySeminar        CompetitionCategory = "SEMINAR"
)

// Member is a team member record embedded on the team item.
type Member struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"`
	EducationLevel string `json:"education_level"`
	Institution    string `json:"institution"`
	IsLeader       bool   `json:"is_leader"`
}

// Team is a competition team owned by its leader (the creator).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (leader_id-index): leader_id
//
// ActivePaymentID is a marker attribute used as the transactional guard for
// the one-active-payment-per-team rule: payment creation sets it inside the
// same TransactWriteItems as the payment insert, and a second create fails
// the condition check. It is cleared when a payment dies (EXPIRED/FAILED)
// and kept on COMPLETED.
//
// A team with Paid=true or VERIFIED status is immutable to its leader.

type Team struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Category           CompetitionCategory `json:"category"`
	LeaderID           string              `json:"leader_id"`
	VerificationStatus VerificationStatus  `json:"verification_status"`
	Paid               bool                `json:"paid"`
	ActivePaymentID    string              `json:"active_payment_id,omitempty"`
	Members            []Member            `json:"members,omitempty"`
	CreatedAt          time.Time           `json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
}

// LockedForLeader reports whether the leader may still mutate the team.
func (t Team) LockedForLeader() bool {
	return t.Paid || t.VerificationStatus == VerificationStatusVerified
}
