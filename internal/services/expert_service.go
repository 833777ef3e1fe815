package services

import (
	"errors"
	"fmt"

	"github.com/gainablefr/gainable-backend/internal/database"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExpertNotFound = errors.New("expert not found")
	ErrInvalidStatus  = errors.New("status must be pending or active")
)

type ExpertService struct {
	db        *gorm.DB
	publicURL string
}

func NewExpertService(db *gorm.DB, publicURL string) *ExpertService {
	return &ExpertService{db: db, publicURL: publicURL}
}

func (s *ExpertService) preloadTags(q *gorm.DB) *gorm.DB {
	return q.
		Preload("Technologies").
		Preload("InterventionsClim").
		Preload("InterventionsEtude").
		Preload("InterventionsDiag").
		Preload("Batiments").
		Preload("Marques").
		Preload("Certifications").
		Preload("Photos", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") })
}

// GetProfile loads the dashboard view of an expert, tags included.
func (s *ExpertService) GetProfile(expertID uuid.UUID) (*models.Expert, error) {
	var expert models.Expert
	if err := s.preloadTags(s.db).First(&expert, "id = ?", expertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}
	return &expert, nil
}

// GetPublicBySlug loads an active expert for the public profile page.
func (s *ExpertService) GetPublicBySlug(slug string) (*models.Expert, error) {
	var expert models.Expert
	err := s.preloadTags(s.db).
		Scopes(database.ActiveExperts()).
		First(&expert, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}
	return &expert, nil
}

// UpdateProfile applies the dashboard form: scalar fields updated in place,
// tag lists deleted and recreated wholesale inside one transaction.
func (s *ExpertService) UpdateProfile(expertID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Expert, error) {
	var expert models.Expert
	if err := s.db.First(&expert, "id = ?", expertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"nom_entreprise":      req.NomEntreprise,
			"description":         req.Description,
			"adresse":             req.Adresse,
			"code_postal":         req.CodePostal,
			"ville":               req.Ville,
			"telephone":           req.Telephone,
			"email_contact":       req.EmailContact,
			"site_web":            req.SiteWeb,
			"logo_url":            req.LogoURL,
			"video_url":           req.VideoURL,
			"facebook":            req.Facebook,
			"instagram":           req.Instagram,
			"linked_in":           req.LinkedIn,
			"latitude":            req.Latitude,
			"longitude":           req.Longitude,
			"intervention_radius": req.InterventionRadius,
		}
		if req.Pays != "" {
			updates["pays"] = req.Pays
		}
		if err := tx.Model(&expert).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update expert: %w", err)
		}

		if err := replaceTags(tx, expert.ID, &models.ExpertTechnology{}, req.Technologies,
			func(v string) interface{} { return &models.ExpertTechnology{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertInterventionClim{}, req.InterventionsClim,
			func(v string) interface{} { return &models.ExpertInterventionClim{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertInterventionEtude{}, req.InterventionsEtude,
			func(v string) interface{} { return &models.ExpertInterventionEtude{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertInterventionDiag{}, req.InterventionsDiag,
			func(v string) interface{} { return &models.ExpertInterventionDiag{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertBatiment{}, req.Batiments,
			func(v string) interface{} { return &models.ExpertBatiment{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertMarque{}, req.Marques,
			func(v string) interface{} { return &models.ExpertMarque{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}
		if err := replaceTags(tx, expert.ID, &models.ExpertCertification{}, req.Certifications,
			func(v string) interface{} { return &models.ExpertCertification{ExpertID: expert.ID, Value: v} }); err != nil {
			return err
		}

		if err := tx.Where("expert_id = ?", expert.ID).Delete(&models.ExpertPhoto{}).Error; err != nil {
			return err
		}
		for i, url := range req.Photos {
			if url == "" {
				continue
			}
			photo := models.ExpertPhoto{ExpertID: expert.ID, URL: url, Position: i}
			if err := tx.Create(&photo).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProfile(expertID)
}

func replaceTags(tx *gorm.DB, expertID uuid.UUID, model interface{}, values []string, build func(string) interface{}) error {
	if err := tx.Where("expert_id = ?", expertID).Delete(model).Error; err != nil {
		return err
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		if err := tx.Create(build(v)).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListByStatus returns experts for the admin review queue.
func (s *ExpertService) ListByStatus(status string) ([]models.Expert, error) {
	q := s.db.Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var experts []models.Expert
	if err := q.Find(&experts).Error; err != nil {
		return nil, err
	}
	return experts, nil
}

// UpdateStatus is the admin approval/label action.
func (s *ExpertService) UpdateStatus(expertID uuid.UUID, req *dto.UpdateExpertStatusRequest) (*models.Expert, error) {
	if req.Status != models.ExpertStatusPending && req.Status != models.ExpertStatusActive {
		return nil, ErrInvalidStatus
	}

	var expert models.Expert
	if err := s.db.First(&expert, "id = ?", expertID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpertNotFound
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": req.Status}
	if req.IsLabeled != nil {
		updates["is_labeled"] = *req.IsLabeled
	}
	if err := s.db.Model(&expert).Updates(updates).Error; err != nil {
		return nil, err
	}
	return &expert, nil
}

// Activate flips an expert to active after a successful checkout.
func (s *ExpertService) Activate(expertID uuid.UUID) error {
	result := s.db.Model(&models.Expert{}).
		Where("id = ?", expertID).
		Update("status", models.ExpertStatusActive)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrExpertNotFound
	}
	return nil
}

// LocalBusinessJSONLD builds the schema.org structured data embedded in the
// public profile page.
func (s *ExpertService) LocalBusinessJSONLD(e *models.Expert) map[string]any {
	data := map[string]any{
		"@context":  "https://schema.org",
		"@type":     "LocalBusiness",
		"name":      e.NomEntreprise,
		"url":       s.publicURL + "/experts/" + e.Slug,
		"telephone": e.Telephone,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   e.Adresse,
			"postalCode":      e.CodePostal,
			"addressLocality": e.Ville,
			"addressCountry":  e.Pays,
		},
	}
	if e.Description != "" {
		data["description"] = e.Description
	}
	if e.LogoURL != "" {
		data["image"] = e.LogoURL
	}
	if e.Latitude != 0 || e.Longitude != 0 {
		data["geo"] = map[string]any{
			"@type":     "GeoCoordinates",
			"latitude":  e.Latitude,
			"longitude": e.Longitude,
		}
	}
	return data
}
