package intake

import "context"

// Repository is the persistence port for intake documents.
type Repository interface {
	Upsert(ctx context.Context, i *Intake) error
	GetByCompanyID(ctx context.Context, companyID string) (*Intake, error)
}
