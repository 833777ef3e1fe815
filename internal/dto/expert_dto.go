package dto

import "github.com/google/uuid"

// ExpertSummary is the directory search result shape: enough for the list
// card and the map marker.
type ExpertSummary struct {
	ID                 uuid.UUID `json:"id"`
	NomEntreprise      string    `json:"nom_entreprise"`
	Slug               string    `json:"slug"`
	ExpertType         string    `json:"expert_type"`
	Ville              string    `json:"ville"`
	CodePostal         string    `json:"code_postal"`
	Pays               string    `json:"pays"`
	LogoURL            string    `json:"logo_url"`
	IsLabeled          bool      `json:"is_labeled"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	InterventionRadius int       `json:"intervention_radius"`
	Technologies       []string  `json:"technologies"`
	Batiments          []string  `json:"batiments"`
	DistanceKm         *float64  `json:"distance_km,omitempty"`
}

// PublicExpertResponse is the server-rendered profile page payload,
// structured data included.
type PublicExpertResponse struct {
	ExpertSummary
	Description        string           `json:"description"`
	Adresse            string           `json:"adresse"`
	Telephone          string           `json:"telephone"`
	EmailContact       string           `json:"email_contact"`
	SiteWeb            string           `json:"site_web"`
	VideoURL           string           `json:"video_url"`
	Facebook           string           `json:"facebook"`
	Instagram          string           `json:"instagram"`
	LinkedIn           string           `json:"linkedin"`
	InterventionsClim  []string         `json:"interventions_clim"`
	InterventionsEtude []string         `json:"interventions_etude"`
	InterventionsDiag  []string         `json:"interventions_diag"`
	Marques            []string         `json:"marques"`
	Certifications     []string         `json:"certifications"`
	Photos             []string         `json:"photos"`
	Articles           []ArticleSummary `json:"articles"`
	JSONLD             map[string]any   `json:"json_ld"`
}

// UpdateProfileRequest mirrors the dashboard profile form. Tag lists are
// replaced wholesale on save.
type UpdateProfileRequest struct {
	NomEntreprise string `json:"nom_entreprise"`
	Description   string `json:"description"`
	Adresse       string `json:"adresse"`
	CodePostal    string `json:"code_postal"`
	Ville         string `json:"ville"`
	Pays          string `json:"pays"`
	Telephone     string `json:"telephone"`
	EmailContact  string `json:"email_contact"`
	SiteWeb       string `json:"site_web"`
	LogoURL       string `json:"logo_url"`
	VideoURL      string `json:"video_url"`
	Facebook      string `json:"facebook"`
	Instagram     string `json:"instagram"`
	LinkedIn      string `json:"linkedin"`

	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	InterventionRadius int     `json:"intervention_radius"`

	Technologies       []string `json:"technologies"`
	InterventionsClim  []string `json:"interventions_clim"`
	InterventionsEtude []string `json:"interventions_etude"`
	InterventionsDiag  []string `json:"interventions_diag"`
	Batiments          []string `json:"batiments"`
	Marques            []string `json:"marques"`
	Certifications     []string `json:"certifications"`
	Photos             []string `json:"photos"`
}

// SiretLookupResponse is the proxied company record for signup autofill.
type SiretLookupResponse struct {
	Nom        string `json:"nom"`
	Adresse    string `json:"adresse"`
	CodePostal string `json:"code_postal"`
	Ville      string `json:"ville"`
	Naf        string `json:"naf"`
}

type GeocodeResponse struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	City  string  `json:"city"`
	Label string  `json:"label"`
}

type CheckoutRequest struct {
	PlanID   string    `json:"planId"`
	Interval string    `json:"interval"`
	ExpertID uuid.UUID `json:"expertId"`
	Email    string    `json:"email"`
}

type CheckoutResponse struct {
	URL string `json:"url"`
}

type UpdateExpertStatusRequest struct {
	Status    string `json:"status"`
	IsLabeled *bool  `json:"is_labeled,omitempty"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
