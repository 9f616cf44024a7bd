package usecases

import (
	"context"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/intake"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/assets"
)

type mockCompanyRepo struct {
	getByIDFn func(ctx context.Context, organizationID, id string) (*company.Company, error)
	updateFn  func(ctx context.Context, c *company.Company) error
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepo) Update(ctx context.Context, c *company.Company) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, organizationID, id string) (*company.Company, error) {
	return m.getByIDFn(ctx, organizationID, id)
}

func (m *mockCompanyRepo) ListByOrganization(ctx context.Context, organizationID string, offset, limit int) ([]*company.Company, int64, error) {
	return nil, 0, nil
}

func (m *mockCompanyRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*company.Company, error) {
	return nil, nil
}

type mockIntakeRepo struct {
	upsertFn func(ctx context.Context, i *intake.Intake) error
	getFn    func(ctx context.Context, companyID string) (*intake.Intake, error)
}

func (m *mockIntakeRepo) Upsert(ctx context.Context, i *intake.Intake) error {
	if m.upsertFn != nil {
		return m.upsertFn(ctx, i)
	}
	return nil
}

func (m *mockIntakeRepo) GetByCompanyID(ctx context.Context, companyID string) (*intake.Intake, error) {
	return m.getFn(ctx, companyID)
}

type mockReviewRepo struct {
	deleted  []string
	inserted []*review.Review
}

func (m *mockReviewRepo) DeleteByCompanyID(ctx context.Context, companyID string) error {
	m.deleted = append(m.deleted, companyID)
	return nil
}

func (m *mockReviewRepo) CreateBatch(ctx context.Context, reviews []*review.Review) error {
	m.inserted = append(m.inserted, reviews...)
	return nil
}

func (m *mockReviewRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*review.Review, error) {
	return m.inserted, nil
}

type mockMediaRepo struct {
	deletedCategories []mediavo.Category
	inserted          []*media.MediaItem
}

func (m *mockMediaRepo) DeleteByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) error {
	m.deletedCategories = append(m.deletedCategories, category)
	return nil
}

func (m *mockMediaRepo) CreateBatch(ctx context.Context, items []*media.MediaItem) error {
	m.inserted = append(m.inserted, items...)
	return nil
}

func (m *mockMediaRepo) Update(ctx context.Context, item *media.MediaItem) error { return nil }
func (m *mockMediaRepo) GetByID(ctx context.Context, id string) (*media.MediaItem, error) {
	return nil, nil
}

func (m *mockMediaRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*media.MediaItem, error) {
	return m.inserted, nil
}

func (m *mockMediaRepo) ListActiveByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) ([]*media.MediaItem, error) {
	return nil, nil
}

type mockRelocator struct {
	relocateFn func(ctx context.Context, sourceURL, category, companyID string) (string, assets.Outcome, error)
	calls      []string
}

func (m *mockRelocator) Relocate(ctx context.Context, sourceURL, category, companyID string) (string, assets.Outcome, error) {
	m.calls = append(m.calls, sourceURL)
	if m.relocateFn != nil {
		return m.relocateFn(ctx, sourceURL, category, companyID)
	}
	return "https://cdn.owned.example/" + companyID + "/x.jpg", assets.OutcomeStored, nil
}

// passthroughTx runs the callback without a real transaction.
type passthroughTx struct {
	calls int
}

func (m *passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
