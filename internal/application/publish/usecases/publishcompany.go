package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/webflow"
	"github.com/beaconhq/beacon/internal/shared/biztime"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/id"
	"github.com/beaconhq/beacon/internal/shared/logger"
	"github.com/beaconhq/beacon/internal/shared/services/richtext"
)

// CMSClient is the collection-item surface of the CMS API used by publish.
type CMSClient interface {
	FindItemBySlug(ctx context.Context, slug string) (*webflow.Item, error)
	CreateItem(ctx context.Context, fields webflow.FieldData) (*webflow.Item, error)
	UpdateItem(ctx context.Context, itemID string, fields webflow.FieldData) (*webflow.Item, error)
	PublishItems(ctx context.Context, itemIDs []string) error
}

const (
	PublishStatusCreated = "created"
	PublishStatusUpdated = "updated"
)

type PublishCompanyCommand struct {
	OrganizationID string
	CompanyID      string
}

type PublishCompanyResult struct {
	Status   string
	RemoteID string
	Slug     string
}

// PublishCompanyUseCase pushes a company profile to the CMS collection.
// Create vs update is decided by the stored remote ID first, then by a
// slug lookup, so re-publishing an already-present profile never
// duplicates the item.
type PublishCompanyUseCase struct {
	companyRepo company.Repository
	reviewRepo  review.Repository
	mediaRepo   media.Repository
	cms         CMSClient
	renderer    richtext.Renderer
	logger      logger.Interface
}

func NewPublishCompanyUseCase(
	companyRepo company.Repository,
	reviewRepo review.Repository,
	mediaRepo media.Repository,
	cms CMSClient,
	renderer richtext.Renderer,
	logger logger.Interface,
) *PublishCompanyUseCase {
	return &PublishCompanyUseCase{
		companyRepo: companyRepo,
		reviewRepo:  reviewRepo,
		mediaRepo:   mediaRepo,
		cms:         cms,
		renderer:    renderer,
		logger:      logger,
	}
}

func (uc *PublishCompanyUseCase) Execute(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	slug := uc.resolveSlug(c)
	fields, err := uc.buildFieldData(ctx, c, slug)
	if err != nil {
		return nil, err
	}

	item, status, err := uc.upsertItem(ctx, c, slug, fields)
	if err != nil {
		uc.logger.Errorw("failed to push company to cms", "error", err, "company_id", c.ID())
		// A structured CMS rejection keeps its upstream status on the way
		// out; anything else maps to 500.
		var apiErr *webflow.APIError
		if errors.As(err, &apiErr) {
			return nil, apperrors.NewUpstreamError("cms rejected company profile", apiErr.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("failed to publish company: %w", err)
	}

	finalSlug := item.Slug()
	if finalSlug == "" {
		finalSlug = slug
	}

	if err := c.LinkRemoteProfile(item.ID, finalSlug); err != nil {
		return nil, fmt.Errorf("failed to link remote profile: %w", err)
	}
	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to persist remote profile link", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to persist remote profile link: %w", err)
	}

	// The item exists as a draft at this point. A failed publish leaves a
	// correct draft behind, so it is reported but not unwound.
	if err := uc.cms.PublishItems(ctx, []string{item.ID}); err != nil {
		uc.logger.Warnw("item staged but not published", "error", err, "company_id", c.ID(), "item_id", item.ID)
	}

	uc.logger.Infow("company published",
		"company_id", c.ID(),
		"item_id", item.ID,
		"slug", finalSlug,
		"status", status,
	)

	return &PublishCompanyResult{Status: status, RemoteID: item.ID, Slug: finalSlug}, nil
}

// resolveSlug keeps the slug a previous publish settled on; first-time
// publishes get a deterministic fragment so two same-named businesses in
// different cities never race for one slug.
func (uc *PublishCompanyUseCase) resolveSlug(c *company.Company) string {
	if c.WebflowSlug() != nil && *c.WebflowSlug() != "" {
		return *c.WebflowSlug()
	}
	fragment := strings.ReplaceAll(c.ID(), "-", "")
	if len(fragment) > id.SlugFragmentLength {
		fragment = fragment[:id.SlugFragmentLength]
	}
	return vo.ComputeSlugWithFragment(c.Name(), fragment)
}

func (uc *PublishCompanyUseCase) upsertItem(ctx context.Context, c *company.Company, slug string, fields webflow.FieldData) (*webflow.Item, string, error) {
	if c.WebflowProfileID() != nil && *c.WebflowProfileID() != "" {
		item, err := uc.cms.UpdateItem(ctx, *c.WebflowProfileID(), fields)
		if err != nil {
			return nil, "", err
		}
		return item, PublishStatusUpdated, nil
	}

	existing, err := uc.cms.FindItemBySlug(ctx, slug)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		item, err := uc.cms.UpdateItem(ctx, existing.ID, fields)
		if err != nil {
			return nil, "", err
		}
		return item, PublishStatusUpdated, nil
	}

	item, err := uc.cms.CreateItem(ctx, fields)
	if err == nil {
		return item, PublishStatusCreated, nil
	}

	// Archived items keep their slug without showing up in lookups. Retry
	// once with a timestamp suffix; any other failure surfaces as-is.
	var apiErr *webflow.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsSlugConflict() {
		return nil, "", err
	}

	retrySlug := slug + "-" + biztime.FormatTimestampSuffix(biztime.NowUTC())
	uc.logger.Warnw("slug conflict on create, retrying with suffix",
		"company_id", c.ID(),
		"slug", slug,
		"retry_slug", retrySlug,
	)
	fields["slug"] = retrySlug
	item, err = uc.cms.CreateItem(ctx, fields)
	if err != nil {
		return nil, "", err
	}
	return item, PublishStatusCreated, nil
}

func (uc *PublishCompanyUseCase) buildFieldData(ctx context.Context, c *company.Company, slug string) (webflow.FieldData, error) {
	fields := webflow.FieldData{
		"name": c.Name(),
		"slug": slug,
		"plan": c.Plan().String(),
	}

	setString := func(key string, v *string) {
		if v != nil && *v != "" {
			fields[key] = *v
		}
	}
	setString("website", c.Website())
	setString("phone", c.Phone())
	setString("email", c.Email())
	setString("address", c.Address())
	setString("city", c.City())
	setString("state", c.State())
	setString("zip", c.Zip())
	setString("tagline", c.Tagline())
	setString("logo-url", c.LogoURL())
	setString("ai-summary", c.AISummary())
	setString("pricing-info", c.PricingInfo())

	if about := c.About(); about != nil && *about != "" {
		html, err := uc.renderer.ToHTMLSanitized(*about)
		if err != nil {
			return nil, fmt.Errorf("failed to render about section: %w", err)
		}
		fields["about"] = html
	}

	if badges := c.Badges(); len(badges) > 0 {
		fields["badges"] = strings.Join(badges, "|")
	}
	for platform, url := range c.SocialLinks() {
		fields[platform+"-url"] = url
	}

	reviews, err := uc.reviewRepo.ListByCompanyID(ctx, c.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}
	if len(reviews) > 0 {
		sum := 0.0
		rated := 0
		for _, r := range reviews {
			if r.Rating() > 0 {
				sum += r.Rating()
				rated++
			}
		}
		fields["review-count"] = len(reviews)
		if rated > 0 {
			fields["average-rating"] = sum / float64(rated)
		}
	}

	photos, err := uc.mediaRepo.ListActiveByCompanyIDAndCategory(ctx, c.ID(), mediavo.CategoryPhoto)
	if err != nil {
		return nil, fmt.Errorf("failed to load gallery: %w", err)
	}
	if len(photos) > 0 {
		urls := make([]string, 0, len(photos))
		for _, p := range photos {
			urls = append(urls, p.FileURL())
		}
		fields["gallery-urls"] = strings.Join(urls, "\n")
	}

	return fields, nil
}
