package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

func testCompanies(t *testing.T, n int) []*company.Company {
	t.Helper()
	out := make([]*company.Company, 0, n)
	for i := 0; i < n; i++ {
		c, err := company.NewCompany("org-1", fmt.Sprintf("Company %d", i+1), vo.PlanStarter)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}

func TestSyncOrganization_AllSucceed(t *testing.T) {
	companies := testCompanies(t, 3)
	companyRepo := &mockCompanyRepo{
		listFn: func(ctx context.Context, orgID string, offset, limit int) ([]*company.Company, int64, error) {
			if offset > 0 {
				return nil, 3, nil
			}
			return companies, 3, nil
		},
	}
	publisher := &mockPublisher{
		executeFn: func(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
			return &PublishCompanyResult{Status: PublishStatusUpdated}, nil
		},
	}

	uc := NewSyncOrganizationUseCase(companyRepo, publisher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SyncOrganizationCommand{OrganizationID: "org-1"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Len(t, publisher.calls, 3)
}

func TestSyncOrganization_OneFailureDoesNotStopTheRest(t *testing.T) {
	companies := testCompanies(t, 4)
	failingID := companies[1].ID()

	companyRepo := &mockCompanyRepo{
		listFn: func(ctx context.Context, orgID string, offset, limit int) ([]*company.Company, int64, error) {
			if offset > 0 {
				return nil, 4, nil
			}
			return companies, 4, nil
		},
	}
	publisher := &mockPublisher{
		executeFn: func(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
			if cmd.CompanyID == failingID {
				return nil, fmt.Errorf("cms rejected the item")
			}
			return &PublishCompanyResult{Status: PublishStatusCreated}, nil
		},
	}

	uc := NewSyncOrganizationUseCase(companyRepo, publisher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SyncOrganizationCommand{OrganizationID: "org-1"})
	require.NoError(t, err)

	// every company was attempted
	assert.Len(t, publisher.calls, 4)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 3, result.Successful)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, failingID, result.Errors[0].CompanyID)
	assert.Equal(t, "Company 2", result.Errors[0].Name)
	assert.Contains(t, result.Errors[0].Reason, "cms rejected")
}

func TestSyncOrganization_EmptyOrganization(t *testing.T) {
	companyRepo := &mockCompanyRepo{
		listFn: func(ctx context.Context, orgID string, offset, limit int) ([]*company.Company, int64, error) {
			return nil, 0, nil
		},
	}
	publisher := &mockPublisher{
		executeFn: func(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
			t.Fatal("publisher must not be called for an empty organization")
			return nil, nil
		},
	}

	uc := NewSyncOrganizationUseCase(companyRepo, publisher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SyncOrganizationCommand{OrganizationID: "org-1"})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 0, result.Successful)
	assert.Equal(t, 0, result.Failed)
}

func TestSyncOrganization_Paginates(t *testing.T) {
	companies := testCompanies(t, 150)
	companyRepo := &mockCompanyRepo{
		listFn: func(ctx context.Context, orgID string, offset, limit int) ([]*company.Company, int64, error) {
			end := offset + limit
			if end > len(companies) {
				end = len(companies)
			}
			if offset >= len(companies) {
				return nil, int64(len(companies)), nil
			}
			return companies[offset:end], int64(len(companies)), nil
		},
	}
	publisher := &mockPublisher{
		executeFn: func(ctx context.Context, cmd PublishCompanyCommand) (*PublishCompanyResult, error) {
			return &PublishCompanyResult{Status: PublishStatusUpdated}, nil
		},
	}

	uc := NewSyncOrganizationUseCase(companyRepo, publisher, logger.NewLogger())
	result, err := uc.Execute(context.Background(), SyncOrganizationCommand{OrganizationID: "org-1"})
	require.NoError(t, err)

	assert.Equal(t, 150, result.Total)
	assert.Equal(t, 150, result.Successful)
	assert.Len(t, publisher.calls, 150)
}
