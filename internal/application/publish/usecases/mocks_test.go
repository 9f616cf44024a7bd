package usecases

import (
	"context"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/webflow"
)

type mockCompanyRepo struct {
	createFn     func(ctx context.Context, c *company.Company) error
	updateFn     func(ctx context.Context, c *company.Company) error
	getByIDFn    func(ctx context.Context, organizationID, id string) (*company.Company, error)
	listFn       func(ctx context.Context, organizationID string, offset, limit int) ([]*company.Company, int64, error)
	getByStripFn func(ctx context.Context, customerID string) (*company.Company, error)
}

func (m *mockCompanyRepo) Create(ctx context.Context, c *company.Company) error {
	if m.createFn != nil {
		return m.createFn(ctx, c)
	}
	return nil
}

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
	return m.listFn(ctx, organizationID, offset, limit)
}

func (m *mockCompanyRepo) GetByStripeCustomerID(ctx context.Context, customerID string) (*company.Company, error) {
	return m.getByStripFn(ctx, customerID)
}

type mockReviewRepo struct {
	listFn func(ctx context.Context, companyID string) ([]*review.Review, error)
}

func (m *mockReviewRepo) DeleteByCompanyID(ctx context.Context, companyID string) error { return nil }
func (m *mockReviewRepo) CreateBatch(ctx context.Context, reviews []*review.Review) error {
	return nil
}

func (m *mockReviewRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*review.Review, error) {
	if m.listFn != nil {
		return m.listFn(ctx, companyID)
	}
	return nil, nil
}

type mockMediaRepo struct {
	listActiveFn func(ctx context.Context, companyID string, category mediavo.Category) ([]*media.MediaItem, error)
}

func (m *mockMediaRepo) DeleteByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) error {
	return nil
}
func (m *mockMediaRepo) CreateBatch(ctx context.Context, items []*media.MediaItem) error { return nil }
func (m *mockMediaRepo) Update(ctx context.Context, item *media.MediaItem) error         { return nil }
func (m *mockMediaRepo) GetByID(ctx context.Context, id string) (*media.MediaItem, error) {
	return nil, nil
}
func (m *mockMediaRepo) ListByCompanyID(ctx context.Context, companyID string) ([]*media.MediaItem, error) {
	return nil, nil
}

func (m *mockMediaRepo) ListActiveByCompanyIDAndCategory(ctx context.Context, companyID string, category mediavo.Category) ([]*media.MediaItem, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx, companyID, category)
	}
	return nil, nil
}

type mockCMSClient struct {
	findFn    func(ctx context.Context, slug string) (*webflow.Item, error)
	createFn  func(ctx context.Context, fields webflow.FieldData) (*webflow.Item, error)
	updateFn  func(ctx context.Context, itemID string, fields webflow.FieldData) (*webflow.Item, error)
	publishFn func(ctx context.Context, itemIDs []string) error

	createCalls  int
	publishCalls int
}

func (m *mockCMSClient) FindItemBySlug(ctx context.Context, slug string) (*webflow.Item, error) {
	if m.findFn != nil {
		return m.findFn(ctx, slug)
	}
	return nil, nil
}

func (m *mockCMSClient) CreateItem(ctx context.Context, fields webflow.FieldData) (*webflow.Item, error) {
	m.createCalls++
	return m.createFn(ctx, fields)
}

func (m *mockCMSClient) UpdateItem(ctx context.Context, itemID string, fields webflow.FieldData) (*webflow.Item, error) {
	return m.updateFn(ctx, itemID, fields)
}

func (m *mockCMSClient) PublishItems(ctx context.Context, itemIDs []string) error {
	m.publishCalls++
	if m.publishFn != nil {
		return m.publishFn(ctx, itemIDs)
	}
	return nil
}

type mockRenderer struct{}

func (m *mockRenderer) ToHTML(markdown string) (string, error) { return markdown, nil }
func (m *mockRenderer) Sanitize(htmlContent string) string     { return htmlContent }
func (m *mockRenderer) ToHTMLSanitized(markdown string) (string, error) {
	return "<p>" + markdown + "</p>", nil
}

type mockPublisher struct {
	executeFn func(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error)
	calls     []PublishCompanyCommand
}

func (m *mockPublisher) Execute(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
	m.calls = append(m.calls, cmd)
	return m.executeFn(ctx, cmd)
}
