package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v81"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

// WebhookVerifier checks the event signature and parses the payload.
type WebhookVerifier interface {
	VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error)
}

// EventDeduper records processed event IDs. MarkProcessed returns false
// when the event was already seen, so redelivered webhooks become no-ops.
// Unmark releases an id whose handling failed; the processor will retry
// the delivery and it must not be swallowed as a duplicate.
type EventDeduper interface {
	MarkProcessed(ctx context.Context, eventID string) (bool, error)
	Unmark(ctx context.Context, eventID string) error
}

type HandleWebhookCommand struct {
	Payload         []byte
	SignatureHeader string
}

type HandleWebhookResult struct {
	EventType string
	Handled   bool
	Duplicate bool
	CompanyID string
}

// HandleWebhookUseCase processes payment-processor events. A completed
// checkout creates a pending company from the session metadata; everything
// else is acknowledged and ignored.
type HandleWebhookUseCase struct {
	verifier    WebhookVerifier
	deduper     EventDeduper
	companyRepo company.Repository
	logger      logger.Interface
}

func NewHandleWebhookUseCase(
	verifier WebhookVerifier,
	deduper EventDeduper,
	companyRepo company.Repository,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		verifier:    verifier,
		deduper:     deduper,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) (*HandleWebhookResult, error) {
	event, err := uc.verifier.VerifyWebhook(cmd.Payload, cmd.SignatureHeader)
	if err != nil {
		uc.logger.Warnw("webhook signature verification failed", "error", err)
		return nil, apperrors.NewUnauthorizedError("invalid webhook signature")
	}

	result := &HandleWebhookResult{EventType: string(event.Type)}

	fresh, err := uc.deduper.MarkProcessed(ctx, event.ID)
	if err != nil {
		uc.logger.Errorw("failed to dedupe webhook event", "error", err, "event_id", event.ID)
		return nil, fmt.Errorf("failed to dedupe webhook event: %w", err)
	}
	if !fresh {
		uc.logger.Infow("duplicate webhook event ignored", "event_id", event.ID, "type", event.Type)
		result.Duplicate = true
		return result, nil
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted:
		companyID, err := uc.handleCheckoutCompleted(ctx, event)
		if err != nil {
			// Release the id so the processor's redelivery gets handled
			// instead of dropped as a duplicate.
			if unmarkErr := uc.deduper.Unmark(ctx, event.ID); unmarkErr != nil {
				uc.logger.Errorw("failed to release webhook event id",
					"error", unmarkErr, "event_id", event.ID)
			}
			return nil, err
		}
		result.Handled = true
		result.CompanyID = companyID
	default:
		uc.logger.Debugw("webhook event ignored", "event_id", event.ID, "type", event.Type)
	}

	return result, nil
}

func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event stripe.Event) (string, error) {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return "", fmt.Errorf("failed to parse checkout session: %w", err)
	}

	orgID := session.Metadata["organization_id"]
	companyName := session.Metadata["company_name"]
	planName := session.Metadata["plan"]
	if orgID == "" || companyName == "" {
		uc.logger.Warnw("checkout session missing metadata, skipping",
			"event_id", event.ID,
			"session_id", session.ID,
		)
		return "", apperrors.NewValidationError("checkout session metadata is incomplete")
	}

	plan, err := vo.NewPlan(planName)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}

	c, err := company.NewPendingCompany(orgID, companyName, plan)
	if err != nil {
		return "", fmt.Errorf("failed to create company from checkout: %w", err)
	}

	customerID := ""
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	subscriptionID := ""
	if session.Subscription != nil {
		subscriptionID = session.Subscription.ID
	}
	c.LinkBilling(customerID, subscriptionID)

	if err := uc.companyRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist company from checkout", "error", err, "event_id", event.ID)
		return "", fmt.Errorf("failed to create company from checkout: %w", err)
	}

	uc.logger.Infow("company created from checkout",
		"company_id", c.ID(),
		"organization_id", orgID,
		"plan", plan,
	)

	return c.ID(), nil
}
