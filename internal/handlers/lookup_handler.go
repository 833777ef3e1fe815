package handlers

import (
	"errors"

	"github.com/gainablefr/gainable-backend/internal/dto"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

// LookupHandler proxies the French public APIs used by the signup form and
// the directory search (SIRET autofill, city geocoding).
type LookupHandler struct {
	siretService   *services.SiretService
	geocodeService *services.GeocodeService
}

func NewLookupHandler(siretService *services.SiretService, geocodeService *services.GeocodeService) *LookupHandler {
	return &LookupHandler{siretService: siretService, geocodeService: geocodeService}
}

func (h *LookupHandler) Siret(c *fiber.Ctx) error {
	siret := c.Query("siret")

	result, err := h.siretService.Lookup(c.Context(), siret)
	if err != nil {
		if errors.Is(err, services.ErrSiretFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, services.ErrSiretNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "SIRET lookup unavailable",
		})
	}

	return c.JSON(result)
}

func (h *LookupHandler) Geocode(c *fiber.Ctx) error {
	city := c.Query("city")
	postcode := c.Query("postcode")

	result, err := h.geocodeService.CityToPoint(c.Context(), city, postcode)
	if err != nil {
		if errors.Is(err, services.ErrCityNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Error: true, Message: "Geocoding unavailable",
		})
	}

	return c.JSON(result)
}
