package handlers

import (
	"errors"

	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// Create receives the contact wizard submission and fans it out to the
// selected experts.
func (h *LeadHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateLeadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.leadService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownRecipient) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if isLeadValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create lead",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func isLeadValidationError(err error) bool {
	return errors.Is(err, services.ErrInvalidLeadType) ||
		errors.Is(err, services.ErrNoRecipients) ||
		errors.Is(err, services.ErrTooManyRecipients) ||
		errors.Is(err, services.ErrConsentRequired) ||
		errors.Is(err, services.ErrContactIncomplete) ||
		errors.Is(err, services.ErrEmailInvalid) ||
		errors.Is(err, services.ErrPhoneTooShort) ||
		errors.Is(err, services.ErrMessageTooShort)
}
