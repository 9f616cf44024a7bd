package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v81"

	"github.com/beaconhq/beacon/internal/domain/company"
	companyvo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type mockVerifier struct {
	event stripe.Event
	err   error
}

func (m *mockVerifier) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	return m.event, m.err
}

// mockDeduper mirrors the SetNX/Del semantics of the Redis deduper.
type mockDeduper struct {
	err       error
	processed map[string]bool
	calls     []string
	unmarked  []string
}

func (m *mockDeduper) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	m.calls = append(m.calls, eventID)
	if m.err != nil {
		return false, m.err
	}
	if m.processed == nil {
		m.processed = make(map[string]bool)
	}
	if m.processed[eventID] {
		return false, nil
	}
	m.processed[eventID] = true
	return true, nil
}

func (m *mockDeduper) Unmark(ctx context.Context, eventID string) error {
	m.unmarked = append(m.unmarked, eventID)
	delete(m.processed, eventID)
	return nil
}

type mockCompanyRepo struct {
	createFn func(ctx context.Context, c *company.Company) error
	created  []*company.Company
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, c); err != nil {
			return err
		}
	}
	m.created = append(m.created, c)
	return nil
}
func (m *mockCompanyRepo) Update(ctx context.Context, c *company.Company) error { return nil }
func (m *mockCompanyRepo) GetByID(ctx context.Context, organizationID, id string) (*company.Company, error) {
	return nil, apperrors.NewNotFoundError("company not found")
}
func (m *mockCompanyRepo) ListByOrganization(ctx context.Context, organizationID string, offset, limit int) ([]*company.Company, int64, error) {
	return nil, 0, nil
}
func (m *mockCompanyRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*company.Company, error) {
	return nil, apperrors.NewNotFoundError("company not found")
}

func checkoutEvent(t *testing.T, metadata map[string]string) stripe.Event {
	t.Helper()
	session := map[string]any{
		"id":           "cs_test_123",
		"metadata":     metadata,
		"customer":     map[string]any{"id": "cus_123"},
		"subscription": map[string]any{"id": "sub_456"},
	}
	raw, err := json.Marshal(session)
	require.NoError(t, err)
	return stripe.Event{
		ID:   "evt_1",
		Type: stripe.EventTypeCheckoutSessionCompleted,
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestHandleWebhook_CheckoutCompletedCreatesPendingCompany(t *testing.T) {
	event := checkoutEvent(t, map[string]string{
		"organization_id": "org-1",
		"company_name":    "Acme Roofing",
		"plan":            "growth",
	})
	repo := &mockCompanyRepo{}
	uc := NewHandleWebhookUseCase(
		&mockVerifier{event: event},
		&mockDeduper{},
		repo,
		logger.NewLogger(),
	)

	result, err := uc.Execute(context.Background(), HandleWebhookCommand{
		Payload:         []byte("{}"),
		SignatureHeader: "t=1,v1=sig",
	})
	require.NoError(t, err)

	assert.True(t, result.Handled)
	assert.False(t, result.Duplicate)
	require.Len(t, repo.created, 1)

	c := repo.created[0]
	assert.Equal(t, result.CompanyID, c.ID())
	assert.Equal(t, "org-1", c.OrganizationID())
	assert.Equal(t, "Acme Roofing", c.Name())
	assert.Equal(t, companyvo.PlanGrowth, c.Plan())
	assert.Equal(t, companyvo.StatusPending, c.Status())
	require.NotNil(t, c.StripeCustomerID())
	assert.Equal(t, "cus_123", *c.StripeCustomerID())
	require.NotNil(t, c.StripeSubscriptionID())
	assert.Equal(t, "sub_456", *c.StripeSubscriptionID())
}

func TestHandleWebhook_DuplicateEventIgnored(t *testing.T) {
	event := checkoutEvent(t, map[string]string{
		"organization_id": "org-1",
		"company_name":    "Acme Roofing",
		"plan":            "starter",
	})
	repo := &mockCompanyRepo{}
	deduper := &mockDeduper{processed: map[string]bool{"evt_1": true}}
	uc := NewHandleWebhookUseCase(&mockVerifier{event: event}, deduper, repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.NoError(t, err)

	assert.True(t, result.Duplicate)
	assert.False(t, result.Handled)
	assert.Empty(t, repo.created)
	assert.Equal(t, []string{"evt_1"}, deduper.calls)
}

func TestHandleWebhook_RedeliveryAfterTransientFailureIsHandled(t *testing.T) {
	event := checkoutEvent(t, map[string]string{
		"organization_id": "org-1",
		"company_name":    "Acme Roofing",
		"plan":            "starter",
	})

	failures := 1
	repo := &mockCompanyRepo{
		createFn: func(ctx context.Context, c *company.Company) error {
			if failures > 0 {
				failures--
				return errors.New("connection refused")
			}
			return nil
		},
	}
	deduper := &mockDeduper{}
	uc := NewHandleWebhookUseCase(&mockVerifier{event: event}, deduper, repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.Error(t, err)
	assert.Equal(t, []string{"evt_1"}, deduper.unmarked)
	assert.Empty(t, repo.created)

	// The processor redelivers the same event; it must not be treated as
	// a duplicate of the failed attempt.
	result, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.NoError(t, err)
	assert.False(t, result.Duplicate)
	assert.True(t, result.Handled)
	require.Len(t, repo.created, 1)
}

func TestHandleWebhook_BadSignature(t *testing.T) {
	uc := NewHandleWebhookUseCase(
		&mockVerifier{err: errors.New("no valid signature")},
		&mockDeduper{},
		&mockCompanyRepo{},
		logger.NewLogger(),
	)

	_, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestHandleWebhook_MissingMetadata(t *testing.T) {
	event := checkoutEvent(t, map[string]string{"plan": "starter"})
	repo := &mockCompanyRepo{}
	uc := NewHandleWebhookUseCase(&mockVerifier{event: event}, &mockDeduper{}, repo, logger.NewLogger())

	_, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Empty(t, repo.created)
}

func TestHandleWebhook_UnhandledEventTypeAcknowledged(t *testing.T) {
	event := stripe.Event{ID: "evt_2", Type: stripe.EventTypeInvoicePaid}
	repo := &mockCompanyRepo{}
	uc := NewHandleWebhookUseCase(&mockVerifier{event: event}, &mockDeduper{}, repo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), HandleWebhookCommand{Payload: []byte("{}")})
	require.NoError(t, err)

	assert.False(t, result.Handled)
	assert.Empty(t, repo.created)
}

func TestCreateCheckout_InvalidPlan(t *testing.T) {
	uc := NewCreateCheckoutUseCase(checkoutFn(func(orgID, name, plan string) (string, error) {
		t.Fatal("checkout service should not be called")
		return "", nil
	}), logger.NewLogger())

	_, err := uc.Execute(context.Background(), CreateCheckoutCommand{
		OrganizationID: "org-1",
		CompanyName:    "Acme",
		Plan:           "enterprise",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestCreateCheckout_ReturnsURL(t *testing.T) {
	uc := NewCreateCheckoutUseCase(checkoutFn(func(orgID, name, plan string) (string, error) {
		assert.Equal(t, "org-1", orgID)
		assert.Equal(t, "premium", plan)
		return "https://checkout.stripe.com/c/pay/cs_test", nil
	}), logger.NewLogger())

	result, err := uc.Execute(context.Background(), CreateCheckoutCommand{
		OrganizationID: "org-1",
		CompanyName:    "Acme",
		Plan:           "premium",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", result.CheckoutURL)
}

type checkoutFn func(organizationID, companyName, plan string) (string, error)

func (f checkoutFn) CreateCheckoutSession(organizationID, companyName, plan string) (string, error) {
	return f(organizationID, companyName, plan)
}
