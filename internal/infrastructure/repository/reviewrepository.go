package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/mappers"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
	"github.com/beaconhq/beacon/internal/shared/db"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(gdb *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: gdb}
}

var _ review.Repository = (*ReviewRepository)(nil)

func (r *ReviewRepository) DeleteByCompanyID(ctx context.Context, companyID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("company_id = ?", companyID).
		Delete(&models.ReviewModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reviews: %w", err)
	}
	return nil
}

func (r *ReviewRepository) CreateBatch(ctx context.Context, reviews []*review.Review) error {
	if len(reviews) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	rows := make([]*models.ReviewModel, 0, len(reviews))
	for _, rv := range reviews {
		rows = append(rows, mappers.ReviewToModel(rv))
	}

	if err := tx.Create(rows).Error; err != nil {
		return fmt.Errorf("failed to insert reviews: %w", err)
	}
	return nil
}

func (r *ReviewRepository) ListByCompanyID(ctx context.Context, companyID string) ([]*review.Review, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.ReviewModel
	if err := tx.
		Where("company_id = ?", companyID).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	reviews := make([]*review.Review, 0, len(rows))
	for i := range rows {
		reviews = append(reviews, mappers.ReviewToDomain(&rows[i]))
	}
	return reviews, nil
}
