package media

import (
	"context"

	vo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
)

// Repository is the persistence port for media items. Like reviews, intake
// materialization uses the full-replace policy per company and category.
type Repository interface {
	DeleteByCompanyIDAndCategory(ctx context.Context, companyID string, category vo.Category) error
	CreateBatch(ctx context.Context, items []*MediaItem) error
	Update(ctx context.Context, item *MediaItem) error
	GetByID(ctx context.Context, id string) (*MediaItem, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]*MediaItem, error)
	ListActiveByCompanyIDAndCategory(ctx context.Context, companyID string, category vo.Category) ([]*MediaItem, error)
}
