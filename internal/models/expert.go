package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expert types (membership tiers).
const (
	ExpertTypeCVC   = "cvc_climatisation"
	ExpertTypeEtude = "bureau_etude"
	ExpertTypeDiag  = "diagnostics_dpe"
)

// Expert statuses.
const (
	ExpertStatusPending = "pending"
	ExpertStatusActive  = "active"
)

// Expert is a professional listed in the directory: HVAC installer,
// engineering firm (bureau d'étude) or property diagnostician.
type Expert struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	NomEntreprise string    `gorm:"not null;size:255" json:"nom_entreprise"`
	Description   string    `gorm:"type:text" json:"description"`
	Siret         string    `gorm:"size:14;index" json:"siret"`
	CodeAPE       string    `gorm:"size:10" json:"code_ape"`

	Adresse    string `gorm:"size:255" json:"adresse"`
	CodePostal string `gorm:"size:10" json:"code_postal"`
	Ville      string `gorm:"size:100" json:"ville"`
	Pays       string `gorm:"size:100;default:'France'" json:"pays"`

	Telephone    string `gorm:"size:20" json:"telephone"`
	EmailContact string `gorm:"size:255" json:"email_contact"`
	SiteWeb      string `gorm:"size:255" json:"site_web"`
	LogoURL      string `gorm:"size:500" json:"logo_url"`
	VideoURL     string `gorm:"size:500" json:"video_url"`

	ExpertType string `gorm:"size:30;not null;index" json:"expert_type"`
	Slug       string `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Status     string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	IsLabeled  bool   `gorm:"default:false" json:"is_labeled"`

	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	InterventionRadius int     `gorm:"default:50" json:"intervention_radius"`

	Facebook  string `gorm:"size:255" json:"facebook"`
	Instagram string `gorm:"size:255" json:"instagram"`
	LinkedIn  string `gorm:"size:255" json:"linkedin"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	User User `gorm:"foreignKey:UserID" json:"-"`

	Technologies       []ExpertTechnology        `gorm:"foreignKey:ExpertID" json:"technologies"`
	InterventionsClim  []ExpertInterventionClim  `gorm:"foreignKey:ExpertID" json:"interventions_clim"`
	InterventionsEtude []ExpertInterventionEtude `gorm:"foreignKey:ExpertID" json:"interventions_etude"`
	InterventionsDiag  []ExpertInterventionDiag  `gorm:"foreignKey:ExpertID" json:"interventions_diag"`
	Batiments          []ExpertBatiment          `gorm:"foreignKey:ExpertID" json:"batiments"`
	Marques            []ExpertMarque            `gorm:"foreignKey:ExpertID" json:"marques"`
	Certifications     []ExpertCertification     `gorm:"foreignKey:ExpertID" json:"certifications"`
	Photos             []ExpertPhoto             `gorm:"foreignKey:ExpertID" json:"photos"`
	Articles           []Article                 `gorm:"foreignKey:ExpertID" json:"-"`
}

func (e *Expert) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// IsValidExpertType reports whether t is one of the three membership tiers.
func IsValidExpertType(t string) bool {
	switch t {
	case ExpertTypeCVC, ExpertTypeEtude, ExpertTypeDiag:
		return true
	}
	return false
}

// Tag tables: one row per selected tag, replaced wholesale on profile save.

type ExpertTechnology struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertTechnology) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertInterventionClim struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertInterventionClim) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertInterventionEtude struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertInterventionEtude) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertInterventionDiag struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertInterventionDiag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertBatiment struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertBatiment) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertMarque struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertMarque) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertCertification struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Value    string    `gorm:"size:100;not null" json:"value"`
}

func (t *ExpertCertification) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type ExpertPhoto struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	URL      string    `gorm:"size:500;not null" json:"url"`
	Position int       `gorm:"default:0" json:"position"`
}

func (p *ExpertPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
