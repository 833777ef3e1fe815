package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/dto"
)

var (
	ErrSiretFormat   = errors.New("siret must be exactly 14 digits")
	ErrSiretNotFound = errors.New("no company found for this siret")
)

// SiretService proxies recherche-entreprises.api.gouv.fr to autofill the
// signup form from a SIRET number.
type SiretService struct {
	baseURL string
	client  *http.Client
}

func NewSiretService(baseURL string, timeout time.Duration) *SiretService {
	return &SiretService{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// gouvSearchResponse mirrors the subset of the public API we read.
type gouvSearchResponse struct {
	Results []struct {
		NomComplet         string `json:"nom_complet"`
		NomRaisonSociale   string `json:"nom_raison_sociale"`
		ActivitePrincipale string `json:"activite_principale"`
		Siege              struct {
			Adresse            string `json:"adresse"`
			CodePostal         string `json:"code_postal"`
			LibelleCommune     string `json:"libelle_commune"`
			ActivitePrincipale string `json:"activite_principale"`
		} `json:"siege"`
	} `json:"results"`
}

func (s *SiretService) Lookup(ctx context.Context, siret string) (*dto.SiretLookupResponse, error) {
	if !isValidSiret(siret) {
		return nil, ErrSiretFormat
	}

	endpoint := s.baseURL + "/search?" + url.Values{
		"q":        {siret},
		"page":     {"1"},
		"per_page": {"1"},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("siret lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSiretNotFound
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("siret lookup returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed gouvSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("siret lookup returned invalid JSON: %w", err)
	}
	if len(parsed.Results) == 0 {
		return nil, ErrSiretNotFound
	}

	r := parsed.Results[0]
	nom := r.NomRaisonSociale
	if nom == "" {
		nom = r.NomComplet
	}
	naf := r.Siege.ActivitePrincipale
	if naf == "" {
		naf = r.ActivitePrincipale
	}

	return &dto.SiretLookupResponse{
		Nom:        nom,
		Adresse:    r.Siege.Adresse,
		CodePostal: r.Siege.CodePostal,
		Ville:      r.Siege.LibelleCommune,
		Naf:        naf,
	}, nil
}
