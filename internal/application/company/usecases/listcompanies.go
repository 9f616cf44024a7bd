package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/utils"
)

type ListCompaniesCommand struct {
	OrganizationID string
	Pagination     utils.Pagination
}

type ListCompaniesResult struct {
	Companies []*company.Company
	Total     int64
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, cmd ListCompaniesCommand) (*ListCompaniesResult, error) {
	companies, total, err := uc.companyRepo.ListByOrganization(ctx, cmd.OrganizationID, cmd.Pagination.Offset(), cmd.Pagination.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err, "organization_id", cmd.OrganizationID)
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return &ListCompaniesResult{Companies: companies, Total: total}, nil
}
