package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/database"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MaxLeadRecipients caps the fan-out of one wizard submission.
const MaxLeadRecipients = 5

var (
	ErrInvalidLeadType   = errors.New("type must be cvc, diag or simple")
	ErrNoRecipients      = errors.New("at least one expert must be selected")
	ErrTooManyRecipients = errors.New("a request can target at most 5 experts")
	ErrUnknownRecipient  = errors.New("one of the selected experts is not available")
	ErrConsentRequired   = errors.New("consent is required")
	ErrContactIncomplete = errors.New("nom, email and telephone are required")
	ErrEmailInvalid      = errors.New("email is invalid")
	ErrPhoneTooShort     = errors.New("telephone must be at least 10 characters")
	ErrMessageTooShort   = errors.New("message must be at least 10 characters")
)

type LeadService struct {
	db *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{db: db}
}

// Create validates a contact wizard submission and fans it out to the
// selected experts: one Lead row plus one LeadRecipient per target, all in a
// single transaction.
func (s *LeadService) Create(req *dto.CreateLeadRequest) (*dto.LeadResponse, error) {
	if err := validateLead(req); err != nil {
		return nil, err
	}

	expertIDs := dedupeIDs(req.ExpertIDs)
	if len(expertIDs) == 0 {
		return nil, ErrNoRecipients
	}
	if len(expertIDs) > MaxLeadRecipients {
		return nil, ErrTooManyRecipients
	}

	// Only active experts can receive leads: pending profiles never show up
	// in the directory and must not be reachable by direct API calls either.
	var count int64
	err := s.db.Model(&models.Expert{}).
		Scopes(database.ActiveExperts()).
		Where("id IN ?", expertIDs).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count != int64(len(expertIDs)) {
		return nil, ErrUnknownRecipient
	}

	details := req.Details
	if len(details) == 0 {
		details = []byte("{}")
	}

	lead := models.Lead{
		ID:         uuid.New(),
		LeadType:   req.Type,
		Nom:        req.Nom,
		Prenom:     req.Prenom,
		Email:      req.Email,
		Telephone:  req.Telephone,
		CodePostal: req.CodePostal,
		Ville:      req.Ville,
		Adresse:    req.Adresse,
		Details:    datatypes.JSON(details),
		Consent:    req.Consent,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lead).Error; err != nil {
			return fmt.Errorf("failed to create lead: %w", err)
		}
		for _, expertID := range expertIDs {
			recipient := models.LeadRecipient{
				LeadID:   lead.ID,
				ExpertID: expertID,
				Status:   models.LeadRecipientNew,
			}
			if err := tx.Create(&recipient).Error; err != nil {
				return fmt.Errorf("failed to create lead recipient: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.LeadResponse{
		ID:        lead.ID,
		Type:      lead.LeadType,
		ExpertIDs: expertIDs,
		CreatedAt: lead.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// ListRecent returns leads with their recipients for the admin view.
func (s *LeadService) ListRecent(limit int) ([]models.Lead, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	var leads []models.Lead
	err := s.db.Preload("Recipients").
		Order("created_at DESC").
		Limit(limit).
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// ListForExpert returns the leads addressed to one expert, newest first.
func (s *LeadService) ListForExpert(expertID uuid.UUID) ([]models.Lead, error) {
	var leads []models.Lead
	err := s.db.
		Joins("JOIN lead_recipients ON lead_recipients.lead_id = leads.id").
		Where("lead_recipients.expert_id = ?", expertID).
		Order("leads.created_at DESC").
		Find(&leads).Error
	if err != nil {
		return nil, err
	}
	return leads, nil
}

// Consent is required for every lead type. The legacy generic form shipped
// without the checkbox; that inconsistency is not carried over.
func validateLead(req *dto.CreateLeadRequest) error {
	switch req.Type {
	case models.LeadTypeCVC, models.LeadTypeDiag, models.LeadTypeSimple:
	default:
		return ErrInvalidLeadType
	}

	if strings.TrimSpace(req.Nom) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Telephone) == "" {
		return ErrContactIncomplete
	}
	if !strings.Contains(req.Email, "@") {
		return ErrEmailInvalid
	}
	if len(req.Telephone) < 10 {
		return ErrPhoneTooShort
	}
	if req.Type == models.LeadTypeSimple && len(strings.TrimSpace(req.Message)) < 10 {
		return ErrMessageTooShort
	}
	if !req.Consent {
		return ErrConsentRequired
	}
	return nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
