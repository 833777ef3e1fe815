package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

// CreateLeadRequest is the contact wizard payload. Details keeps the raw
// form-specific answers (technologies, surface, diagnostic tags...) as-is.
type CreateLeadRequest struct {
	Type       string          `json:"type"`
	Nom        string          `json:"nom"`
	Prenom     string          `json:"prenom"`
	Email      string          `json:"email"`
	Telephone  string          `json:"telephone"`
	CodePostal string          `json:"code_postal"`
	Ville      string          `json:"ville"`
	Adresse    string          `json:"adresse"`
	Message    string          `json:"message"`
	Consent    bool            `json:"consent"`
	Details    json.RawMessage `json:"details"`
	ExpertIDs  []uuid.UUID     `json:"expertIds"`
}

type LeadResponse struct {
	ID        uuid.UUID   `json:"id"`
	Type      string      `json:"type"`
	ExpertIDs []uuid.UUID `json:"expertIds"`
	CreatedAt string      `json:"created_at"`
}
