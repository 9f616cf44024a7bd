package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type ListReviewsCommand struct {
	OrganizationID string
	CompanyID      string
}

type ListReviewsResult struct {
	Reviews []*review.Review
}

type ListReviewsUseCase struct {
	companyRepo company.Repository
	reviewRepo  review.Repository
	logger      logger.Interface
}

func NewListReviewsUseCase(companyRepo company.Repository, reviewRepo review.Repository, logger logger.Interface) *ListReviewsUseCase {
	return &ListReviewsUseCase{
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
		logger:      logger,
	}
}

func (uc *ListReviewsUseCase) Execute(ctx context.Context, cmd ListReviewsCommand) (*ListReviewsResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	reviews, err := uc.reviewRepo.ListByCompanyID(ctx, c.ID())
	if err != nil {
		uc.logger.Errorw("failed to list reviews", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return &ListReviewsResult{Reviews: reviews}, nil
}
