package dto

import "github.com/google/uuid"

// RegisterRequest carries the multi-section signup form. Plan selects the
// membership tier and doubles as the Expert type.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Plan     string `json:"plan"`

	NomEntreprise string `json:"nom_entreprise"`
	Siret         string `json:"siret"`
	CodeAPE       string `json:"code_ape"`
	Adresse       string `json:"adresse"`
	CodePostal    string `json:"code_postal"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
	Telephone     string `json:"telephone"`
	Description   string `json:"description"`
}

type RegisterResponse struct {
	ExpertID uuid.UUID `json:"expertId"`
	Slug     string    `json:"slug"`
	Status   string    `json:"status"`
	// APEWarning is set when the APE code does not match the selected tier
	// but the advisory policy (non-French country) let the signup through.
	APEWarning string `json:"ape_warning,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	ExpertID *uuid.UUID `json:"expert_id,omitempty"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
