package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/media"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type ListMediaCommand struct {
	OrganizationID string
	CompanyID      string
}

type ListMediaResult struct {
	Items []*media.MediaItem
}

type ListMediaUseCase struct {
	companyRepo company.Repository
	mediaRepo   media.Repository
	logger      logger.Interface
}

func NewListMediaUseCase(companyRepo company.Repository, mediaRepo media.Repository, logger logger.Interface) *ListMediaUseCase {
	return &ListMediaUseCase{
		companyRepo: companyRepo,
		mediaRepo:   mediaRepo,
		logger:      logger,
	}
}

func (uc *ListMediaUseCase) Execute(ctx context.Context, cmd ListMediaCommand) (*ListMediaResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	items, err := uc.mediaRepo.ListByCompanyID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list media", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to list media: %w", err)
	}

	return &ListMediaResult{Items: items}, nil
}
