package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Lead types (which wizard form produced the request).
const (
	LeadTypeCVC    = "cvc"
	LeadTypeDiag   = "diag"
	LeadTypeSimple = "simple"
)

// Lead is a visitor's request for quotes, fanned out to 1-5 experts
// through LeadRecipient rows.
type Lead struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	LeadType   string         `gorm:"size:10;not null;index" json:"lead_type"`
	Nom        string         `gorm:"size:100;not null" json:"nom"`
	Prenom     string         `gorm:"size:100" json:"prenom"`
	Email      string         `gorm:"size:255;not null" json:"email"`
	Telephone  string         `gorm:"size:20;not null" json:"telephone"`
	CodePostal string         `gorm:"size:10" json:"code_postal"`
	Ville      string         `gorm:"size:100" json:"ville"`
	Adresse    string         `gorm:"size:255" json:"adresse"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	Consent    bool           `gorm:"not null;default:false" json:"consent"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	Recipients []LeadRecipient `gorm:"foreignKey:LeadID" json:"recipients"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// LeadRecipient statuses.
const (
	LeadRecipientNew    = "new"
	LeadRecipientViewed = "viewed"
)

type LeadRecipient struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	LeadID    uuid.UUID `gorm:"type:uuid;not null;index" json:"lead_id"`
	ExpertID  uuid.UUID `gorm:"type:uuid;not null;index" json:"expert_id"`
	Status    string    `gorm:"size:20;not null;default:'new'" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	Lead   Lead   `gorm:"foreignKey:LeadID" json:"-"`
	Expert Expert `gorm:"foreignKey:ExpertID" json:"-"`
}

func (r *LeadRecipient) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
