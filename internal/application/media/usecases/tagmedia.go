package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	"github.com/beaconhq/beacon/internal/domain/media"
	vo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type TagMediaCommand struct {
	OrganizationID string
	CompanyID      string
	MediaID        string
	Tags           []string
	Status         *string
	Priority       *int
}

type TagMediaResult struct {
	MediaItem   *media.MediaItem
	LogoUpdated bool
}

// TagMediaUseCase applies operator curation to a media item. Activating an
// item tagged or categorized as a logo mirrors its URL onto the company so
// the publish step never has to scan the gallery.
type TagMediaUseCase struct {
	companyRepo company.Repository
	mediaRepo   media.Repository
	logger      logger.Interface
}

func NewTagMediaUseCase(companyRepo company.Repository, mediaRepo media.Repository, logger logger.Interface) *TagMediaUseCase {
	return &TagMediaUseCase{
		companyRepo: companyRepo,
		mediaRepo:   mediaRepo,
		logger:      logger,
	}
}

func (uc *TagMediaUseCase) Execute(ctx context.Context, cmd TagMediaCommand) (*TagMediaResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	item, err := uc.mediaRepo.GetByID(ctx, cmd.MediaID)
	if err != nil {
		return nil, err
	}
	if item.CompanyID() != c.ID() {
		return nil, apperrors.NewNotFoundError("media item not found")
	}

	if cmd.Tags != nil {
		item.SetTags(cmd.Tags)
	}
	if cmd.Priority != nil {
		item.SetPriority(*cmd.Priority)
	}
	if cmd.Status != nil {
		status, err := vo.NewStatus(*cmd.Status)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		if err := item.SetStatus(status); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	if err := uc.mediaRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update media item", "error", err, "media_id", item.ID())
		return nil, fmt.Errorf("failed to update media item: %w", err)
	}

	logoUpdated := false
	if item.IsActiveLogo() {
		c.SetLogoURL(item.FileURL())
		if err := uc.companyRepo.Update(ctx, c); err != nil {
			uc.logger.Errorw("failed to mirror logo onto company", "error", err, "company_id", c.ID())
			return nil, fmt.Errorf("failed to update company logo: %w", err)
		}
		logoUpdated = true
		uc.logger.Infow("company logo mirrored", "company_id", c.ID(), "media_id", item.ID())
	}

	return &TagMediaResult{MediaItem: item, LogoUpdated: logoUpdated}, nil
}
