// Package billing wraps the payment processor: checkout session creation
// and webhook signature verification. Checkout itself is delegated
// wholesale to the processor's hosted page.
package billing

import (
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
	"github.com/stripe/stripe-go/v81/webhook"

	"github.com/beaconhq/beacon/internal/shared/config"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type StripeService struct {
	api           *client.API
	webhookSecret string
	successURL    string
	cancelURL     string
	priceIDs      map[string]string
	logger        logger.Interface
}

func NewStripeService(cfg *config.StripeConfig, log logger.Interface) *StripeService {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)

	return &StripeService{
		api:           api,
		webhookSecret: cfg.WebhookSecret,
		successURL:    cfg.SuccessURL,
		cancelURL:     cfg.CancelURL,
		priceIDs:      cfg.PriceIDs,
		logger:        log.Named("billing.stripe"),
	}
}

// CreateCheckoutSession starts a hosted subscription checkout for the given
// plan. Organization and company name travel in metadata so the webhook can
// create the company when payment completes.
func (s *StripeService) CreateCheckoutSession(organizationID, companyName, plan string) (string, error) {
	priceID, ok := s.priceIDs[plan]
	if !ok {
		return "", fmt.Errorf("no price configured for plan %q", plan)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		SuccessURL: stripe.String(s.successURL),
		CancelURL:  stripe.String(s.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.AddMetadata("organization_id", organizationID)
	params.AddMetadata("company_name", companyName)
	params.AddMetadata("plan", plan)

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.Infow("checkout session created",
		"session_id", sess.ID, "organization_id", organizationID, "plan", plan)

	return sess.URL, nil
}

// VerifyWebhook checks the signature header against the shared secret and
// returns the parsed event. The payload is never trusted before this.
func (s *StripeService) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return event, nil
}
