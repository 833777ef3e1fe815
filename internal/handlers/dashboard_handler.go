package handlers

import (
	"errors"

	"github.com/gainablefr/gainable-backend/internal/authctx"
	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the authenticated expert's own profile and leads.
type DashboardHandler struct {
	expertService *services.ExpertService
	leadService   *services.LeadService
}

func NewDashboardHandler(expertService *services.ExpertService, leadService *services.LeadService) *DashboardHandler {
	return &DashboardHandler{expertService: expertService, leadService: leadService}
}

func (h *DashboardHandler) GetProfile(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	expert, err := h.expertService.GetProfile(expertID)
	if err != nil {
		if errors.Is(err, services.ErrExpertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Expert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch profile",
		})
	}

	return c.JSON(expert)
}

func (h *DashboardHandler) UpdateProfile(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	expert, err := h.expertService.UpdateProfile(expertID, &req)
	if err != nil {
		if errors.Is(err, services.ErrExpertNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Expert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update profile",
		})
	}

	return c.JSON(expert)
}

// Leads lists the requests addressed to the authenticated expert.
func (h *DashboardHandler) Leads(c *fiber.Ctx) error {
	expertID, err := authctx.GetExpertID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	leads, err := h.leadService.ListForExpert(expertID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch leads",
		})
	}

	return c.JSON(leads)
}
