package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/database"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound   = errors.New("article not found")
	ErrTitleRequired     = errors.New("title is required")
	ErrInvalidArtStatus  = errors.New("status must be DRAFT or PUBLISHED")
	ErrIncompleteArticle = errors.New("article must reach a completeness score of 100 before publishing")
)

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// List returns the dashboard article list for one expert.
func (s *ArticleService) List(expertID uuid.UUID) ([]dto.ArticleSummary, error) {
	var articles []models.Article
	err := s.db.Scopes(database.OwnedByExpert(expertID)).
		Order("updated_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		doc, err := content.Normalize(a.JSONContent)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, dto.ArticleSummary{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Status:      a.Status,
			Score:       content.Score(doc, a.MainImage, a.AltText).Total,
			PublishedAt: formatTimePtr(a.PublishedAt),
			UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return summaries, nil
}

// Get loads one article for editing. Legacy sections are normalized to
// blocks here, so the editor only ever sees the block model.
func (s *ArticleService) Get(expertID, articleID uuid.UUID) (*dto.ArticleResponse, error) {
	var article models.Article
	err := s.db.Scopes(database.OwnedByExpert(expertID)).
		First(&article, "id = ?", articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return s.toResponse(&article)
}

// Create saves a new article from the block editor. Publishing directly
// requires a completeness score of 100; drafts always save.
func (s *ArticleService) Create(expertID uuid.UUID, req *dto.SaveArticleRequest) (*dto.ArticleResponse, error) {
	doc, status, encoded, err := prepareSave(req)
	if err != nil {
		return nil, err
	}

	slug, err := s.uniqueArticleSlug(expertID, req.Title)
	if err != nil {
		return nil, err
	}

	article := models.Article{
		ID:           uuid.New(),
		ExpertID:     expertID,
		Title:        req.Title,
		Slug:         slug,
		Introduction: req.Introduction,
		Content:      content.RenderHTML(doc),
		JSONContent:  datatypes.JSON(encoded),
		MainImage:    req.MainImage,
		AltText:      req.AltText,
		VideoURL:     req.VideoURL,
		Status:       status,
	}
	if status == models.ArticleStatusPublished {
		now := time.Now().UTC()
		article.PublishedAt = &now
	}

	if err := s.db.Create(&article).Error; err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}
	return s.toResponse(&article)
}

// Update rewrites the article from the editor state. The slug stays stable
// so published URLs never break on edit.
func (s *ArticleService) Update(expertID, articleID uuid.UUID, req *dto.SaveArticleRequest) (*dto.ArticleResponse, error) {
	var article models.Article
	err := s.db.Scopes(database.OwnedByExpert(expertID)).
		First(&article, "id = ?", articleID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	doc, status, encoded, err := prepareSave(req)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"title":        req.Title,
		"introduction": req.Introduction,
		"content":      content.RenderHTML(doc),
		"json_content": datatypes.JSON(encoded),
		"main_image":   req.MainImage,
		"alt_text":     req.AltText,
		"video_url":    req.VideoURL,
		"status":       status,
	}
	if status == models.ArticleStatusPublished && article.PublishedAt == nil {
		updates["published_at"] = time.Now().UTC()
	}

	if err := s.db.Model(&article).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	return s.Get(expertID, articleID)
}

func (s *ArticleService) Delete(expertID, articleID uuid.UUID) error {
	result := s.db.Scopes(database.OwnedByExpert(expertID)).
		Delete(&models.Article{}, "id = ?", articleID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

// GetPublished loads a published article by its per-expert slug for the
// public page.
func (s *ArticleService) GetPublished(expertID uuid.UUID, slug string) (*models.Article, error) {
	var article models.Article
	err := s.db.Scopes(database.OwnedByExpert(expertID)).
		Where("status = ?", models.ArticleStatusPublished).
		First(&article, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return &article, nil
}

// ListPublished returns the published articles shown on a public profile.
func (s *ArticleService) ListPublished(expertID uuid.UUID) ([]models.Article, error) {
	var articles []models.Article
	err := s.db.Scopes(database.OwnedByExpert(expertID)).
		Where("status = ?", models.ArticleStatusPublished).
		Order("published_at DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// prepareSave validates the editor payload and gates publishing on the
// completeness score, server-side: the UI gate alone is bypassable.
func prepareSave(req *dto.SaveArticleRequest) (content.Document, string, []byte, error) {
	if strings.TrimSpace(req.Title) == "" {
		return content.Document{}, "", nil, ErrTitleRequired
	}

	status := req.Status
	if status == "" {
		status = models.ArticleStatusDraft
	}
	if status != models.ArticleStatusDraft && status != models.ArticleStatusPublished {
		return content.Document{}, "", nil, ErrInvalidArtStatus
	}

	doc := content.Document{Blocks: req.Blocks, FAQ: req.FAQ}
	for i := range doc.Blocks {
		if doc.Blocks[i].ID == "" {
			doc.Blocks[i].ID = uuid.NewString()
		}
	}
	for i := range doc.FAQ {
		if doc.FAQ[i].ID == "" {
			doc.FAQ[i].ID = uuid.NewString()
		}
	}

	if status == models.ArticleStatusPublished {
		if content.Score(doc, req.MainImage, req.AltText).Total < 100 {
			return content.Document{}, "", nil, ErrIncompleteArticle
		}
	}

	encoded, err := content.Encode(doc)
	if err != nil {
		return content.Document{}, "", nil, err
	}
	return doc, status, encoded, nil
}

func (s *ArticleService) toResponse(a *models.Article) (*dto.ArticleResponse, error) {
	doc, err := content.Normalize(a.JSONContent)
	if err != nil {
		return nil, err
	}
	return &dto.ArticleResponse{
		ID:           a.ID,
		Title:        a.Title,
		Slug:         a.Slug,
		Introduction: a.Introduction,
		Blocks:       doc.Blocks,
		FAQ:          doc.FAQ,
		MainImage:    a.MainImage,
		AltText:      a.AltText,
		VideoURL:     a.VideoURL,
		Status:       a.Status,
		Score:        content.Score(doc, a.MainImage, a.AltText),
		PublishedAt:  formatTimePtr(a.PublishedAt),
		UpdatedAt:    a.UpdatedAt.UTC().Format(time.RFC3339),
	}, nil
}

// uniqueArticleSlug derives the slug from the title, unique per expert only:
// two experts can both publish "installation-gainable".
func (s *ArticleService) uniqueArticleSlug(expertID uuid.UUID, title string) (string, error) {
	base := content.Slugify(title)
	if base == "" {
		base = "article"
	}

	slug := base
	for i := 2; i <= 50; i++ {
		var count int64
		err := s.db.Model(&models.Article{}).
			Scopes(database.OwnedByExpert(expertID)).
			Where("slug = ?", slug).
			Count(&count).Error
		if err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return "", errors.New("could not derive a unique article slug")
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
