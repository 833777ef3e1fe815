package dto

import (
	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/google/uuid"
)

// SaveArticleRequest is shared by create and update. Status PUBLISHED is
// rejected unless the completeness score reaches 100; DRAFT always saves.
type SaveArticleRequest struct {
	Title        string            `json:"title"`
	Introduction string            `json:"introduction"`
	Blocks       []content.Block   `json:"blocks"`
	FAQ          []content.FAQItem `json:"faq"`
	MainImage    string            `json:"main_image"`
	AltText      string            `json:"alt_text"`
	VideoURL     string            `json:"video_url"`
	Status       string            `json:"status"`
}

// ArticleResponse is the dashboard editor view: blocks are already
// normalized, legacy sections never leak past the data layer.
type ArticleResponse struct {
	ID           uuid.UUID           `json:"id"`
	Title        string              `json:"title"`
	Slug         string              `json:"slug"`
	Introduction string              `json:"introduction"`
	Blocks       []content.Block     `json:"blocks"`
	FAQ          []content.FAQItem   `json:"faq"`
	MainImage    string              `json:"main_image"`
	AltText      string              `json:"alt_text"`
	VideoURL     string              `json:"video_url"`
	Status       string              `json:"status"`
	Score        content.ScoreDetail `json:"score"`
	PublishedAt  *string             `json:"published_at"`
	UpdatedAt    string              `json:"updated_at"`
}

type ArticleSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Status      string    `json:"status"`
	Score       int       `json:"score"`
	PublishedAt *string   `json:"published_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// PublicArticleResponse serves the rendered SEO page.
type PublicArticleResponse struct {
	Title        string            `json:"title"`
	Slug         string            `json:"slug"`
	Introduction string            `json:"introduction"`
	ContentHTML  string            `json:"content_html"`
	FAQ          []content.FAQItem `json:"faq"`
	MainImage    string            `json:"main_image"`
	AltText      string            `json:"alt_text"`
	VideoURL     string            `json:"video_url"`
	PublishedAt  *string           `json:"published_at"`
	Expert       ExpertSummary     `json:"expert"`
	JSONLD       map[string]any    `json:"json_ld"`
}
