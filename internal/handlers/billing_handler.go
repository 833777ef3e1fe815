package handlers

import (
	"errors"
	"log/slog"

	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type BillingHandler struct {
	billingService *services.BillingService
}

func NewBillingHandler(billingService *services.BillingService) *BillingHandler {
	return &BillingHandler{billingService: billingService}
}

// Checkout creates a hosted checkout session for a pending expert.
func (h *BillingHandler) Checkout(c *fiber.Ctx) error {
	var req dto.CheckoutRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.ExpertID == uuid.Nil || req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "expertId and email are required",
		})
	}

	url, err := h.billingService.CreateCheckout(req.PlanID, req.Interval, req.ExpertID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUnknownPlan), errors.Is(err, services.ErrFreePlan):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrExpertNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrAlreadyActive):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("checkout session creation failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create checkout session",
		})
	}

	return c.JSON(dto.CheckoutResponse{URL: url})
}

// Webhook receives Stripe events. The raw body and the Stripe-Signature
// header are passed through untouched for signature verification.
func (h *BillingHandler) Webhook(c *fiber.Ctx) error {
	if err := h.billingService.HandleWebhook(c.Body(), c.Get("Stripe-Signature")); err != nil {
		if errors.Is(err, services.ErrWebhookPayload) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid webhook payload",
			})
		}
		slog.Error("stripe webhook processing failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Webhook processing failed",
		})
	}

	return c.JSON(fiber.Map{"received": true})
}
