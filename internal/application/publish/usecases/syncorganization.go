package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

// CompanyPublisher pushes a single company to the CMS.
type CompanyPublisher interface {
	Execute(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error)
}

const syncPageSize = 100

type SyncOrganizationCommand struct {
	OrganizationID string
}

type SyncError struct {
	CompanyID string `json:"company_id"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
}

type SyncOrganizationResult struct {
	Total      int         `json:"total"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Errors     []SyncError `json:"errors,omitempty"`
}

// SyncOrganizationUseCase republishes every company in an organization.
// Companies are pushed sequentially and one failure never stops the rest;
// the caller gets a per-company error report instead.
type SyncOrganizationUseCase struct {
	companyRepo company.Repository
	publisher   CompanyPublisher
	logger      logger.Interface
}

func NewSyncOrganizationUseCase(companyRepo company.Repository, publisher CompanyPublisher, logger logger.Interface) *SyncOrganizationUseCase {
	return &SyncOrganizationUseCase{
		companyRepo: companyRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *SyncOrganizationUseCase) Execute(ctx context.Context, cmd SyncOrganizationCommand) (*SyncOrganizationResult, error) {
	result := &SyncOrganizationResult{}

	offset := 0
	for {
		companies, total, err := uc.companyRepo.ListByOrganization(ctx, cmd.OrganizationID, offset, syncPageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to list companies: %w", err)
		}
		if offset == 0 {
			result.Total = int(total)
		}
		if len(companies) == 0 {
			break
		}

		for _, c := range companies {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			_, err := uc.publisher.Execute(ctx, PublishCompanyCommand{
				OrganizationID: cmd.OrganizationID,
				CompanyID:      c.ID(),
			})
			if err != nil {
				result.Failed++
				result.Errors = append(result.Errors, SyncError{
					CompanyID: c.ID(),
					Name:      c.Name(),
					Reason:    err.Error(),
				})
				uc.logger.Warnw("company sync failed", "company_id", c.ID(), "error", err)
				continue
			}
			result.Successful++
		}

		offset += len(companies)
		if offset >= result.Total {
			break
		}
	}

	uc.logger.Infow("organization sync finished",
		"organization_id", cmd.OrganizationID,
		"total", result.Total,
		"successful", result.Successful,
		"failed", result.Failed,
	)

	return result, nil
}
