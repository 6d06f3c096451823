package request

type CreateTeamRequest struct {
	Name     string `json:"name" binding:"required,min=3"`
	Category string `json:"category" binding:"required"`
}

// UpdateTeamRequest carries partial edits; empty fields keep current values.
type UpdateTeamRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type AddMemberRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	BirthDate      string `json:"birth_date"`
	EducationLevel string `json:"education_level"`
	Institution    string `json:"institution"`
	IsLeader       bool   `json:"is_leader"`
}
