package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/mappers"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
	"github.com/beaconhq/beacon/internal/shared/db"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(gdb *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: gdb}
}

var _ company.Repository = (*CompanyRepository)(nil)

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	model, err := mappers.CompanyToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *company.Company) error {
	model, err := mappers.CompanyToModel(c)
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)

	// Save writes all columns so that fields cleared on the entity are
	// cleared in the row as well.
	result := tx.
		Model(&models.CompanyModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "organization_id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

// GetByID is org-scoped: a company owned by another organization is
// reported as not found rather than forbidden, so existence does not leak.
func (r *CompanyRepository) GetByID(ctx context.Context, organizationID, id string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company: %w", err)
	}

	return mappers.CompanyToDomain(&model)
}

func (r *CompanyRepository) ListByOrganization(ctx context.Context, organizationID string, offset, limit int) ([]*company.Company, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var total int64
	if err := tx.
		Model(&models.CompanyModel{}).
		Where("organization_id = ?", organizationID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var rows []models.CompanyModel
	if err := tx.
		Where("organization_id = ?", organizationID).
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*company.Company, 0, len(rows))
	for i := range rows {
		c, err := mappers.CompanyToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}
	return companies, total, nil
}

func (r *CompanyRepository) GetByStripeCustomerID(ctx context.Context, customerID string) (*company.Company, error) {
	var model models.CompanyModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Where("stripe_customer_id = ?", customerID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("company not found")
		}
		return nil, fmt.Errorf("failed to find company by customer: %w", err)
	}

	return mappers.CompanyToDomain(&model)
}
