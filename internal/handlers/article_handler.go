package handlers

import (
	"errors"

	"github.com/gainablefr/gainable-backend/internal/authctx"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ArticleHandler serves the dashboard block editor.
type ArticleHandler struct {
	articleService *services.ArticleService
}

func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

func (h *ArticleHandler) List(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	articles, err := h.articleService.List(expertID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch articles",
		})
	}

	return c.JSON(articles)
}

func (h *ArticleHandler) Get(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid article ID",
		})
	}

	article, err := h.articleService.Get(expertID, articleID)
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch article",
		})
	}

	return c.JSON(article)
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.SaveArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	article, err := h.articleService.Create(expertID, &req)
	if err != nil {
		return h.saveError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(article)
}

func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid article ID",
		})
	}

	var req dto.SaveArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	article, err := h.articleService.Update(expertID, articleID, &req)
	if err != nil {
		return h.saveError(c, err)
	}

	return c.JSON(article)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	articleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid article ID",
		})
	}

	if err := h.articleService.Delete(expertID, articleID); err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete article",
		})
	}

	return c.JSON(fiber.Map{"message": "Article deleted"})
}

func (h *ArticleHandler) saveError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrArticleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrIncompleteArticle):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrTitleRequired), errors.Is(err, services.ErrInvalidArtStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to save article",
	})
}
