package usecases

import (
	"context"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
)

type mockCompanyRepo struct {
	getByIDFn func(ctx context.Context, organizationID, id string) (*company.Company, error)
	updateFn  func(ctx context.Context, c *company.Company) error
	updates   int
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error { return nil }

func (m *mockCompanyRepo) Update(ctx context.Context, c *company.Company) error {
	m.updates++
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

type mockMediaRepo struct {
	getByIDFn func(ctx context.Context, id string) (*media.MediaItem, error)
	updateFn  func(ctx context.Context, item *media.MediaItem) error
	listFn    func(ctx context.Context, companyID string) ([]*media.MediaItem, error)
}

func (m *mockMediaRepo) DeleteByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) error {
	return nil
}
func (m *mockMediaRepo) CreateBatch(ctx context.Context, items []*media.MediaItem) error { return nil }

func (m *mockMediaRepo) Update(ctx context.Context, item *media.MediaItem) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, item)
	}
	return nil
}

func (m *mockMediaRepo) GetByID(ctx context.Context, id string) (*media.MediaItem, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockMediaRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*media.MediaItem, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID)
	}
	return nil, nil
}

func (m *mockMediaRepo) ListActiveByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) ([]*media.MediaItem, error) {
	return nil, nil
}
