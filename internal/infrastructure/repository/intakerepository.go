package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/beaconhq/beacon/internal/domain/intake"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/mappers"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
	"github.com/beaconhq/beacon/internal/shared/db"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
)

type IntakeRepository struct {
	db *gorm.DB
}

func NewIntakeRepository(gdb *gorm.DB) *IntakeRepository {
	return &IntakeRepository{db: gdb}
}

var _ intake.Repository = (*IntakeRepository)(nil)

// Upsert replaces the company's intake document wholesale; a company owns
// at most one intake row.
func (r *IntakeRepository) Upsert(ctx context.Context, i *intake.Intake) error {
	model := mappers.IntakeToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"roma_data", "updated_at"}),
		}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to upsert intake: %w", err)
	}
	return nil
}

func (r *IntakeRepository) GetByCompanyID(ctx context.Context, companyID string) (*intake.Intake, error) {
	var model models.IntakeModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("company_id = ?", companyID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("intake not found for company")
		}
		return nil, fmt.Errorf("failed to find intake: %w", err)
	}

	return mappers.IntakeToDomain(&model), nil
}
