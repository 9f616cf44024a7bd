package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type CreateCompanyCommand struct {
	OrganizationID string
	Name           string
	Plan           string
	Website        *string
	Phone          *string
	Email          *string
}

type CreateCompanyResult struct {
	Company *company.Company
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	if cmd.Name == "" {
		return nil, apperrors.NewValidationError("company name is required")
	}

	plan, err := vo.NewPlan(cmd.Plan)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	c, err := company.NewCompany(cmd.OrganizationID, cmd.Name, plan)
	if err != nil {
		uc.logger.Errorw("failed to create company aggregate", "error", err)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	c.ApplyProfileFields(company.ProfileFields{
		Website: cmd.Website,
		Phone:   cmd.Phone,
		Email:   cmd.Email,
	})

	if err := uc.companyRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist company", "error", err, "organization_id", cmd.OrganizationID)
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	uc.logger.Infow("company created",
		"company_id", c.ID(),
		"organization_id", cmd.OrganizationID,
		"plan", plan,
	)

	return &CreateCompanyResult{Company: c}, nil
}
