package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beaconhq/beacon/internal/domain/media"
	vo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/mappers"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
	"github.com/beaconhq/beacon/internal/shared/db"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
)

type MediaItemRepository struct {
	db *gorm.DB
}

func NewMediaItemRepository(gdb *gorm.DB) *MediaItemRepository {
	return &MediaItemRepository{db: gdb}
}

var _ media.Repository = (*MediaItemRepository)(nil)

// DeleteByCompanyIDAndCategory clears intake-sourced rows before reinsert.
// Scoped by category so re-ingesting gallery photos does not wipe the logo.
func (r *MediaItemRepository) DeleteByCompanyIDAndCategory(ctx context.Context, companyID string, category vo.Category) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("company_id = ? AND category = ?", companyID, category.String()).
		Delete(&models.MediaItemModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete media items: %w", err)
	}
	return nil
}

func (r *MediaItemRepository) CreateBatch(ctx context.Context, items []*media.MediaItem) error {
	if len(items) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.MediaItemModel, 0, len(items))
	for _, item := range items {
		model, err := mappers.MediaItemToModel(item)
		if err != nil {
			return err
		}
		rows = append(rows, model)
	}

	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to insert media items: %w", err)
	}
	return nil
}

func (r *MediaItemRepository) Update(ctx context.Context, item *media.MediaItem) error {
	model, err := mappers.MediaItemToModel(item)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.MediaItemModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "company_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update media item: %w", result.Error)
	}
	return nil
}

func (r *MediaItemRepository) GetByID(ctx context.Context, id string) (*media.MediaItem, error) {
	var model models.MediaItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.First(&model, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("media item not found")
		}
		return nil, fmt.Errorf("failed to find media item: %w", err)
	}

	return mappers.MediaItemToDomain(&model)
}

func (r *MediaItemRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*media.MediaItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.MediaItemModel
	if err := tx.
		Where("company_id = ?", companyID).
		Order("priority ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *MediaItemRepository) ListActiveByCompanyIDAndCategory(ctx context.Context, companyID string, category vo.Category) ([]*media.MediaItem, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.MediaItemModel
	if err := tx.
		Where("company_id = ? AND category = ? AND status = ?", companyID, category.String(), vo.StatusActive.String()).
		Order("priority ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list active media items: %w", err)
	}

	return r.toDomainList(rows)
}

func (r *MediaItemRepository) toDomainList(rows []models.MediaItemModel) ([]*media.MediaItem, error) {
	items := make([]*media.MediaItem, 0, len(rows))
	for i := range rows {
		item, err := mappers.MediaItemToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
