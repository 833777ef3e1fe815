package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Article statuses.
const (
	ArticleStatusDraft     = "DRAFT"
	ArticleStatusPublished = "PUBLISHED"
)

// Article is an SEO article authored by an expert in the block editor.
// JSONContent is the authoritative structured source ({blocks, faq}, legacy
// {sections, faq} still readable); Content is the rendered HTML cache rebuilt
// on every save.
type Article struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ExpertID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_articles_expert_slug" json:"expert_id"`
	Title        string         `gorm:"not null;size:255" json:"title"`
	Slug         string         `gorm:"not null;size:255;uniqueIndex:idx_articles_expert_slug" json:"slug"`
	Introduction string         `gorm:"type:text" json:"introduction"`
	Content      string         `gorm:"type:text" json:"content"`
	JSONContent  datatypes.JSON `gorm:"type:jsonb" json:"json_content"`
	MainImage    string         `gorm:"size:500" json:"main_image"`
	AltText      string         `gorm:"size:255" json:"alt_text"`
	VideoURL     string         `gorm:"size:500" json:"video_url"`
	Status       string         `gorm:"size:20;not null;default:'DRAFT';index" json:"status"`
	PublishedAt  *time.Time     `json:"published_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Expert Expert `gorm:"foreignKey:ExpertID" json:"-"`
}

func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
