package review

import "context"

// Repository is the persistence port for reviews. Materialization uses the
// full-replace policy: delete everything for the company, then insert the
// freshly extracted set.
type Repository interface {
	DeleteByCompanyID(ctx context.Context, companyID string) error
	CreateBatch(ctx context.Context, reviews []*Review) error
	ListByCompanyID(ctx context.Context, companyID string) ([]*Review, error)
}
