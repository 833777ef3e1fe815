package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gainablefr/gainable-backend/internal/config"
	"github.com/gainablefr/gainable-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
	"gorm.io/gorm"
)

var (
	ErrUnknownPlan    = errors.New("unknown plan or billing interval")
	ErrFreePlan       = errors.New("the bureau d'étude plan does not require checkout")
	ErrAlreadyActive  = errors.New("expert is already active")
	ErrWebhookPayload = errors.New("invalid webhook payload")
)

// BillingService creates Stripe checkout sessions for the paid tiers and
// activates the expert when the completed-checkout webhook arrives.
type BillingService struct {
	db      *gorm.DB
	cfg     *config.Config
	experts *ExpertService
}

func NewBillingService(db *gorm.DB, cfg *config.Config, experts *ExpertService) *BillingService {
	stripe.Key = cfg.StripeSecretKey
	return &BillingService{db: db, cfg: cfg, experts: experts}
}

// priceID maps planId + interval to the configured Stripe price.
func (s *BillingService) priceID(planID, interval string) (string, error) {
	var prices config.PlanPrices
	switch planID {
	case models.ExpertTypeCVC:
		prices = s.cfg.StripePriceCVC
	case models.ExpertTypeDiag:
		prices = s.cfg.StripePriceDiag
	case models.ExpertTypeEtude:
		return "", ErrFreePlan
	default:
		return "", ErrUnknownPlan
	}

	switch interval {
	case "monthly":
		if prices.Monthly == "" {
			return "", ErrUnknownPlan
		}
		return prices.Monthly, nil
	case "yearly":
		if prices.Yearly == "" {
			return "", ErrUnknownPlan
		}
		return prices.Yearly, nil
	}
	return "", ErrUnknownPlan
}

// CreateCheckout returns the hosted checkout URL for a pending expert.
func (s *BillingService) CreateCheckout(planID, interval string, expertID uuid.UUID, email string) (string, error) {
	price, err := s.priceID(planID, interval)
	if err != nil {
		return "", err
	}

	var expert models.Expert
	if err := s.db.First(&expert, "id = ?", expertID).Error; err != nil {
		return "", ErrExpertNotFound
	}
	if expert.Status == models.ExpertStatusActive {
		return "", ErrAlreadyActive
	}

	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		CustomerEmail: stripe.String(email),
		SuccessURL:    stripe.String(s.cfg.CheckoutSuccessURL),
		CancelURL:     stripe.String(s.cfg.CheckoutCancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(price), Quantity: stripe.Int64(1)},
		},
		Metadata: map[string]string{
			"expert_id": expertID.String(),
			"plan_id":   planID,
		},
	}

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}
	return sess.URL, nil
}

// HandleWebhook verifies the Stripe signature and activates the expert on
// checkout.session.completed. Other event types are acknowledged and ignored.
func (s *BillingService) HandleWebhook(payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.StripeWebhookSecret)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookPayload, err)
	}

	if event.Type != "checkout.session.completed" {
		slog.Info("stripe event ignored", "event_type", event.Type)
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("%w: %v", ErrWebhookPayload, err)
	}

	rawID := sess.Metadata["expert_id"]
	expertID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("%w: bad expert_id metadata %q", ErrWebhookPayload, rawID)
	}

	if err := s.experts.Activate(expertID); err != nil {
		return err
	}

	slog.Info("expert activated after checkout", "expert_id", expertID, "plan_id", sess.Metadata["plan_id"])
	return nil
}
