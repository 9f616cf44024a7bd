package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/domain/company"
	companyvo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	"github.com/beaconhq/beacon/internal/domain/media"
	mediavo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

func strPtr(s string) *string { return &s }

func newFixtures(t *testing.T, category mediavo.Category) (*company.Company, *media.MediaItem) {
	t.Helper()
	c, err := company.NewCompany("org-1", "Acme Roofing", companyvo.PlanStarter)
	require.NoError(t, err)
	item, err := media.NewMediaItem(c.ID(), "https://cdn.owned.example/logo.png", category)
	require.NoError(t, err)
	return c, item
}

func newTagUseCase(c *company.Company, item *media.MediaItem, companyRepo *mockCompanyRepo) *TagMediaUseCase {
	mediaRepo := &mockMediaRepo{
		getByIDFn: func(ctx context.Context, id string) (*media.MediaItem, error) {
			return item, nil
		},
	}
	return NewTagMediaUseCase(companyRepo, mediaRepo, logger.NewLogger())
}

func TestTagMedia_ActivatingLogoMirrorsOntoCompany(t *testing.T) {
	c, item := newFixtures(t, mediavo.CategoryLogo)
	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, item, companyRepo)
	result, err := uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        item.ID(),
		Status:         strPtr("active"),
	})
	require.NoError(t, err)

	assert.True(t, result.LogoUpdated)
	require.NotNil(t, c.LogoURL())
	assert.Equal(t, "https://cdn.owned.example/logo.png", *c.LogoURL())
	assert.Equal(t, 1, companyRepo.updates)
}

func TestTagMedia_LogoTagOnPhotoAlsoMirrors(t *testing.T) {
	c, item := newFixtures(t, mediavo.CategoryPhoto)
	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, item, companyRepo)
	result, err := uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        item.ID(),
		Tags:           []string{"logo"},
		Status:         strPtr("active"),
	})
	require.NoError(t, err)

	assert.True(t, result.LogoUpdated)
	require.NotNil(t, c.LogoURL())
}

func TestTagMedia_PendingLogoDoesNotMirror(t *testing.T) {
	c, item := newFixtures(t, mediavo.CategoryLogo)
	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, item, companyRepo)
	result, err := uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        item.ID(),
		Tags:           []string{"homepage"},
	})
	require.NoError(t, err)

	assert.False(t, result.LogoUpdated)
	assert.Nil(t, c.LogoURL())
	assert.Equal(t, 0, companyRepo.updates)
}

func TestTagMedia_ActivePhotoWithoutLogoTagDoesNotMirror(t *testing.T) {
	c, item := newFixtures(t, mediavo.CategoryPhoto)
	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, item, companyRepo)
	result, err := uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        item.ID(),
		Status:         strPtr("active"),
	})
	require.NoError(t, err)

	assert.False(t, result.LogoUpdated)
	assert.Nil(t, c.LogoURL())
}

func TestTagMedia_ItemFromAnotherCompanyIsNotFound(t *testing.T) {
	c, err := company.NewCompany("org-1", "Acme", companyvo.PlanStarter)
	require.NoError(t, err)
	foreign, err := media.NewMediaItem("other-company", "https://cdn.owned.example/x.png", mediavo.CategoryPhoto)
	require.NoError(t, err)

	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, foreign, companyRepo)
	_, err = uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        foreign.ID(),
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestTagMedia_InvalidStatus(t *testing.T) {
	c, item := newFixtures(t, mediavo.CategoryPhoto)
	companyRepo := &mockCompanyRepo{
		getByIDFn: func(ctx context.Context, orgID, id string) (*company.Company, error) {
			return c, nil
		},
	}

	uc := newTagUseCase(c, item, companyRepo)
	_, err := uc.Execute(context.Background(), TagMediaCommand{
		OrganizationID: "org-1",
		CompanyID:      c.ID(),
		MediaID:        item.ID(),
		Status:         strPtr("archived"),
	})
	require.Error(t, err)
}
