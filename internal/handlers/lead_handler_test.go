package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/gainablefr/gainable-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupLeadApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Expert{}, &models.Lead{}, &models.LeadRecipient{},
	))

	app := fiber.New()
	handler := NewLeadHandler(services.NewLeadService(db))
	app.Post("/api/leads", handler.Create)
	return app, db
}

func seedActiveExpert(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()
	user := models.User{Email: uuid.NewString() + "@test.fr", Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	expert := models.Expert{
		UserID:        user.ID,
		NomEntreprise: "Diag Testeur",
		Slug:          "diag-testeur-" + uuid.NewString()[:8],
		ExpertType:    models.ExpertTypeDiag,
		Status:        models.ExpertStatusActive,
	}
	require.NoError(t, db.Create(&expert).Error)
	return expert.ID
}

func postLead(t *testing.T, app *fiber.App, payload map[string]any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLeadEndpointCreates(t *testing.T) {
	app, db := setupLeadApp(t)
	expertID := seedActiveExpert(t, db)

	resp := postLead(t, app, map[string]any{
		"type":      "diag",
		"nom":       "Durand",
		"email":     "durand@example.fr",
		"telephone": "0612345678",
		"consent":   true,
		"expertIds": []string{expertID.String()},
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var out struct {
		ID        uuid.UUID   `json:"id"`
		ExpertIDs []uuid.UUID `json:"expertIds"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []uuid.UUID{expertID}, out.ExpertIDs)
}

func TestLeadEndpointValidation(t *testing.T) {
	app, db := setupLeadApp(t)
	expertID := seedActiveExpert(t, db)

	// Missing consent is a client error.
	resp := postLead(t, app, map[string]any{
		"type":      "diag",
		"nom":       "Durand",
		"email":     "durand@example.fr",
		"telephone": "0612345678",
		"expertIds": []string{expertID.String()},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// An unknown recipient is a 404.
	resp = postLead(t, app, map[string]any{
		"type":      "diag",
		"nom":       "Durand",
		"email":     "durand@example.fr",
		"telephone": "0612345678",
		"consent":   true,
		"expertIds": []string{uuid.NewString()},
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
