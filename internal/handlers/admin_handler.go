package handlers

import (
	"errors"
	"strconv"

	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AdminHandler serves the back-office review queue: pending signups,
// activation, labeling and the recent lead feed.
type AdminHandler struct {
	expertService *services.ExpertService
	leadService   *services.LeadService
}

func NewAdminHandler(expertService *services.ExpertService, leadService *services.LeadService) *AdminHandler {
	return &AdminHandler{expertService: expertService, leadService: leadService}
}

// Experts lists experts, optionally filtered by ?status=pending|active.
func (h *AdminHandler) Experts(c *fiber.Ctx) error {
	experts, err := h.expertService.ListByStatus(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch experts",
		})
	}
	return c.JSON(experts)
}

// UpdateExpertStatus approves or suspends an expert and toggles the label.
func (h *AdminHandler) UpdateExpertStatus(c *fiber.Ctx) error {
	expertID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid expert ID",
		})
	}

	var req dto.UpdateExpertStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	expert, err := h.expertService.UpdateStatus(expertID, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrExpertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update expert",
		})
	}

	return c.JSON(expert)
}

// Leads returns the most recent contact requests across the platform.
func (h *AdminHandler) Leads(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit < 1 || limit > 500 {
		limit = 100
	}

	leads, err := h.leadService.ListRecent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch leads",
		})
	}
	return c.JSON(leads)
}
