package services

import (
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

const testWebhookSecret = "whsec_test_secret"

func signedWebhookPayload(t *testing.T, expertID string) ([]byte, string) {
	t.Helper()
	payload := []byte(fmt.Sprintf(
		`{"id":"evt_test","api_version":%q,"type":"checkout.session.completed",`+
			`"data":{"object":{"id":"cs_test","metadata":{"expert_id":%q,"plan_id":"cvc_climatisation"}}}}`,
		stripe.APIVersion, expertID,
	))
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, testWebhookSecret)
	header := fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
	return payload, header
}

func TestHandleWebhookActivatesExpert(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.StripeWebhookSecret = testWebhookSecret
	svc := NewBillingService(db, cfg, NewExpertService(db, "https://gainable.fr"))
	pending := createExpert(t, db, func(e *models.Expert) { e.Status = models.ExpertStatusPending })

	payload, header := signedWebhookPayload(t, pending.ID.String())
	require.NoError(t, svc.HandleWebhook(payload, header))

	var reloaded models.Expert
	require.NoError(t, db.First(&reloaded, "id = ?", pending.ID).Error)
	assert.Equal(t, models.ExpertStatusActive, reloaded.Status)
}

func TestHandleWebhookUnknownExpert(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.StripeWebhookSecret = testWebhookSecret
	svc := NewBillingService(db, cfg, NewExpertService(db, "https://gainable.fr"))

	payload, header := signedWebhookPayload(t, uuid.NewString())
	assert.ErrorIs(t, svc.HandleWebhook(payload, header), ErrExpertNotFound)
}

func TestHandleWebhookBadSignature(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig()
	cfg.StripeWebhookSecret = testWebhookSecret
	svc := NewBillingService(db, cfg, NewExpertService(db, "https://gainable.fr"))
	pending := createExpert(t, db, func(e *models.Expert) { e.Status = models.ExpertStatusPending })

	payload, _ := signedWebhookPayload(t, pending.ID.String())
	err := svc.HandleWebhook(payload, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, ErrWebhookPayload)

	var reloaded models.Expert
	require.NoError(t, db.First(&reloaded, "id = ?", pending.ID).Error)
	assert.Equal(t, models.ExpertStatusPending, reloaded.Status)
}
