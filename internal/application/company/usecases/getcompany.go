package usecases

import (
	"context"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type GetCompanyCommand struct {
	OrganizationID string
	CompanyID      string
}

type GetCompanyResult struct {
	Company *company.Company
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, cmd GetCompanyCommand) (*GetCompanyResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}
	return &GetCompanyResult{Company: c}, nil
}
