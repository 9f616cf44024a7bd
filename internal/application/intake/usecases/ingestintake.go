package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/intake"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/assets"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

// AssetRelocator copies a remote asset into owned storage and reports how
// the attempt ended. A degraded outcome keeps the original URL.
type AssetRelocator interface {
	Relocate(ctx context.Context, sourceURL, category, companyID string) (string, assets.Outcome, error)
}

// TransactionRunner executes fn atomically. All repository calls made with
// the callback context join the same transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type IngestIntakeCommand struct {
	OrganizationID string
	CompanyID      string
}

type IngestIntakeResult struct {
	FieldsUpdated       int
	ReviewsMaterialized int
	MediaMaterialized   int
	DegradedAssets      int
}

// IngestIntakeUseCase reconciles a stored capture document into the
// company profile, reviews, and media gallery. Asset relocation happens
// before the write transaction opens so network fetches never hold locks.
type IngestIntakeUseCase struct {
	companyRepo company.Repository
	intakeRepo  intake.Repository
	reviewRepo  review.Repository
	mediaRepo   media.Repository
	relocator   AssetRelocator
	txRunner    TransactionRunner
	logger      logger.Interface
}

func NewIngestIntakeUseCase(
	companyRepo company.Repository,
	intakeRepo intake.Repository,
	reviewRepo review.Repository,
	mediaRepo media.Repository,
	relocator AssetRelocator,
	txRunner TransactionRunner,
	logger logger.Interface,
) *IngestIntakeUseCase {
	return &IngestIntakeUseCase{
		companyRepo: companyRepo,
		intakeRepo:  intakeRepo,
		reviewRepo:  reviewRepo,
		mediaRepo:   mediaRepo,
		relocator:   relocator,
		txRunner:    txRunner,
		logger:      logger,
	}
}

func (uc *IngestIntakeUseCase) Execute(ctx context.Context, cmd IngestIntakeCommand) (*IngestIntakeResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	in, err := uc.intakeRepo.GetByCompanyID(ctx, c.ID())
	if err != nil {
		return nil, err
	}

	doc, err := in.Document()
	if err != nil {
		return nil, apperrors.NewValidationError("intake document is not valid JSON", err.Error())
	}

	fields := intake.Extract(doc)
	applied := c.ApplyProfileFields(company.ProfileFields{
		Name:        fields.Name,
		Website:     fields.Website,
		Phone:       fields.Phone,
		Email:       fields.Email,
		Address:     fields.Address,
		City:        fields.City,
		State:       fields.State,
		Zip:         fields.Zip,
		Tagline:     fields.Tagline,
		About:       fields.About,
		PricingInfo: fields.PricingInfo,
	})
	if len(fields.Badges) > 0 {
		c.SetBadges(fields.Badges)
		applied++
	}
	if len(fields.SocialLinks) > 0 {
		c.SetSocialLinks(fields.SocialLinks)
		applied++
	}

	reviews, err := uc.buildReviews(c.ID(), intake.CollectReviews(doc))
	if err != nil {
		return nil, err
	}

	items, degraded := uc.buildPhotos(ctx, c.ID(), intake.CollectPhotos(doc))

	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.reviewRepo.DeleteByCompanyID(txCtx, c.ID()); err != nil {
			return fmt.Errorf("failed to clear reviews: %w", err)
		}
		if len(reviews) > 0 {
			if err := uc.reviewRepo.CreateBatch(txCtx, reviews); err != nil {
				return fmt.Errorf("failed to insert reviews: %w", err)
			}
		}

		if err := uc.mediaRepo.DeleteByCompanyIDAndCategory(txCtx, c.ID(), mediavo.CategoryPhoto); err != nil {
			return fmt.Errorf("failed to clear photos: %w", err)
		}
		if len(items) > 0 {
			if err := uc.mediaRepo.CreateBatch(txCtx, items); err != nil {
				return fmt.Errorf("failed to insert photos: %w", err)
			}
		}

		if err := uc.companyRepo.Update(txCtx, c); err != nil {
			return fmt.Errorf("failed to update company: %w", err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("intake ingest failed", "error", err, "company_id", c.ID())
		return nil, err
	}

	uc.logger.Infow("intake ingested",
		"company_id", c.ID(),
		"fields_updated", applied,
		"reviews", len(reviews),
		"media", len(items),
		"degraded_assets", degraded,
	)

	return &IngestIntakeResult{
		FieldsUpdated:       applied,
		ReviewsMaterialized: len(reviews),
		MediaMaterialized:   len(items),
		DegradedAssets:      degraded,
	}, nil
}

func (uc *IngestIntakeUseCase) buildReviews(companyID string, raw []intake.RawReview) ([]*review.Review, error) {
	reviews := make([]*review.Review, 0, len(raw))
	for _, rr := range raw {
		rev, err := review.NewReview(companyID, rr.Platform, rr.Author, rr.Rating, rr.Text)
		if err != nil {
			uc.logger.Warnw("skipping unusable review", "error", err, "company_id", companyID)
			continue
		}
		if rr.Date != "" {
			rev.SetReviewDate(rr.Date)
		}
		if rr.URL != "" {
			rev.SetURL(rr.URL)
		}
		reviews = append(reviews, rev)
	}
	return reviews, nil
}

func (uc *IngestIntakeUseCase) buildPhotos(ctx context.Context, companyID string, raw []intake.RawPhoto) ([]*media.MediaItem, int) {
	items := make([]*media.MediaItem, 0, len(raw))
	degraded := 0
	for i, rp := range raw {
		url, outcome, err := uc.relocator.Relocate(ctx, rp.URL, mediavo.CategoryPhoto.String(), companyID)
		if err != nil {
			uc.logger.Warnw("skipping photo, relocation error", "error", err, "url", rp.URL)
			continue
		}
		if outcome == assets.OutcomeDegraded {
			degraded++
		}

		item, err := media.NewMediaItem(companyID, url, mediavo.CategoryPhoto)
		if err != nil {
			uc.logger.Warnw("skipping unusable photo", "error", err, "url", rp.URL)
			continue
		}
		item.SetPriority(i)
		if rp.Caption != "" {
			item.SetTags([]string{rp.Caption})
		}
		items = append(items, item)
	}
	return items, degraded
}
