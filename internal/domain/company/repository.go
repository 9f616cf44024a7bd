package company

import "context"

// Repository is the persistence port for companies. Lookups are org-scoped;
// a company belonging to another organization is reported as not found.
type Repository interface {
	Create(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, organizationID, id string) (*Company, error)
	ListByOrganization(ctx context.Context, organizationID string, offset, limit int) ([]*Company, int64, error)
	GetByStripeCustomerID(ctx context.Context, customerID string) (*Company, error)
}
