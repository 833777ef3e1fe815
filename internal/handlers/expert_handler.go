package handlers

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gainablefr/gainable-backend/internal/content"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// ExpertHandler serves the public directory: search, profile pages and
// published articles.
type ExpertHandler struct {
	searchService  *services.SearchService
	expertService  *services.ExpertService
	articleService *services.ArticleService
}

func NewExpertHandler(searchService *services.SearchService, expertService *services.ExpertService, articleService *services.ArticleService) *ExpertHandler {
	return &ExpertHandler{
		searchService:  searchService,
		expertService:  expertService,
		articleService: articleService,
	}
}

// Search translates the directory filter query params into a search call.
// Legacy filter values (filter=bureau_etude, filter=diagnostiqueur) are
// folded into the type list so old bookmarked URLs keep working.
func (h *ExpertHandler) Search(c *fiber.Ctx) error {
	params := services.SearchParams{
		Types:         splitCSV(c.Query("type") + "," + c.Query("types") + "," + c.Query("filter")),
		City:          c.Query("city"),
		Country:       c.Query("country"),
		Technologies:  splitCSV(c.Query("technologies")),
		Interventions: splitCSV(c.Query("interventions")),
		Batiments:     splitCSV(c.Query("batiments")),
	}

	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat != nil || errLng != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid lat/lng",
			})
		}
		params.Lat, params.Lng = &lat, &lng
	}

	results, err := h.searchService.Search(params)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Search failed",
		})
	}
	return c.JSON(results)
}

// Profile serves the public expert page by slug.
func (h *ExpertHandler) Profile(c *fiber.Ctx) error {
	expert, err := h.expertService.GetPublicBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrExpertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Expert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	articles, err := h.articleService.ListPublished(expert.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load profile",
		})
	}

	return c.JSON(h.toPublicResponse(expert, articles))
}

// Article serves a published article page under its owner's slug.
func (h *ExpertHandler) Article(c *fiber.Ctx) error {
	expert, err := h.expertService.GetPublicBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, services.ErrExpertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Expert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load article",
		})
	}

	article, err := h.articleService.GetPublished(expert.ID, c.Params("articleSlug"))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Article not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load article",
		})
	}

	doc, err := content.Normalize(article.JSONContent)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load article",
		})
	}

	var publishedAt *string
	if article.PublishedAt != nil {
		s := article.PublishedAt.UTC().Format(time.RFC3339)
		publishedAt = &s
	}

	return c.JSON(dto.PublicArticleResponse{
		Title:        article.Title,
		Slug:         article.Slug,
		Introduction: article.Introduction,
		ContentHTML:  article.Content,
		FAQ:          doc.FAQ,
		MainImage:    article.MainImage,
		AltText:      article.AltText,
		VideoURL:     article.VideoURL,
		PublishedAt:  publishedAt,
		Expert:       summarize(expert),
		JSONLD:       articleJSONLD(article, expert),
	})
}

func (h *ExpertHandler) toPublicResponse(e *models.Expert, articles []models.Article) dto.PublicExpertResponse {
	resp := dto.PublicExpertResponse{
		ExpertSummary:      summarize(e),
		Description:        e.Description,
		Adresse:            e.Adresse,
		Telephone:          e.Telephone,
		EmailContact:       e.EmailContact,
		SiteWeb:            e.SiteWeb,
		VideoURL:           e.VideoURL,
		Facebook:           e.Facebook,
		Instagram:          e.Instagram,
		LinkedIn:           e.LinkedIn,
		InterventionsClim:  make([]string, 0, len(e.InterventionsClim)),
		InterventionsEtude: make([]string, 0, len(e.InterventionsEtude)),
		InterventionsDiag:  make([]string, 0, len(e.InterventionsDiag)),
		Marques:            make([]string, 0, len(e.Marques)),
		Certifications:     make([]string, 0, len(e.Certifications)),
		Photos:             make([]string, 0, len(e.Photos)),
		Articles:           make([]dto.ArticleSummary, 0, len(articles)),
		JSONLD:             h.expertService.LocalBusinessJSONLD(e),
	}
	for _, t := range e.InterventionsClim {
		resp.InterventionsClim = append(resp.InterventionsClim, t.Value)
	}
	for _, t := range e.InterventionsEtude {
		resp.InterventionsEtude = append(resp.InterventionsEtude, t.Value)
	}
	for _, t := range e.InterventionsDiag {
		resp.InterventionsDiag = append(resp.InterventionsDiag, t.Value)
	}
	for _, t := range e.Marques {
		resp.Marques = append(resp.Marques, t.Value)
	}
	for _, t := range e.Certifications {
		resp.Certifications = append(resp.Certifications, t.Value)
	}
	for _, p := range e.Photos {
		resp.Photos = append(resp.Photos, p.URL)
	}
	for _, a := range articles {
		var publishedAt *string
		if a.PublishedAt != nil {
			s := a.PublishedAt.UTC().Format(time.RFC3339)
			publishedAt = &s
		}
		resp.Articles = append(resp.Articles, dto.ArticleSummary{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Status:      a.Status,
			PublishedAt: publishedAt,
			UpdatedAt:   a.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp
}

func summarize(e *models.Expert) dto.ExpertSummary {
	summary := dto.ExpertSummary{
		ID:                 e.ID,
		NomEntreprise:      e.NomEntreprise,
		Slug:               e.Slug,
		ExpertType:         e.ExpertType,
		Ville:              e.Ville,
		CodePostal:         e.CodePostal,
		Pays:               e.Pays,
		LogoURL:            e.LogoURL,
		IsLabeled:          e.IsLabeled,
		Latitude:           e.Latitude,
		Longitude:          e.Longitude,
		InterventionRadius: e.InterventionRadius,
		Technologies:       make([]string, 0, len(e.Technologies)),
		Batiments:          make([]string, 0, len(e.Batiments)),
	}
	for _, t := range e.Technologies {
		summary.Technologies = append(summary.Technologies, t.Value)
	}
	for _, t := range e.Batiments {
		summary.Batiments = append(summary.Batiments, t.Value)
	}
	return summary
}

func articleJSONLD(a *models.Article, e *models.Expert) map[string]any {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Article",
		"headline": a.Title,
		"author": map[string]any{
			"@type": "Organization",
			"name":  e.NomEntreprise,
		},
	}
	if a.MainImage != "" {
		data["image"] = a.MainImage
	}
	if a.PublishedAt != nil {
		data["datePublished"] = a.PublishedAt.UTC().Format(time.RFC3339)
	}
	return data
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
