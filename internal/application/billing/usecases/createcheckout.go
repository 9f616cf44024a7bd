package usecases

import (
	"context"
	"fmt"

	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

// CheckoutService starts a hosted checkout session with the payment
// processor and returns the redirect URL.
type CheckoutService interface {
	CreateCheckoutSession(organizationID, companyName, plan string) (string, error)
}

type CreateCheckoutCommand struct {
	OrganizationID string
	CompanyName    string
	Plan           string
}

type CreateCheckoutResult struct {
	CheckoutURL string
}

type CreateCheckoutUseCase struct {
	checkout CheckoutService
	logger   logger.Interface
}

func NewCreateCheckoutUseCase(checkout CheckoutService, logger logger.Interface) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		checkout: checkout,
		logger:   logger,
	}
}

func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*CreateCheckoutResult, error) {
	if cmd.CompanyName == "" {
		return nil, apperrors.NewValidationError("company name is required")
	}
	plan, err := vo.NewPlan(cmd.Plan)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	url, err := uc.checkout.CreateCheckoutSession(cmd.OrganizationID, cmd.CompanyName, plan.String())
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "error", err, "organization_id", cmd.OrganizationID)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	uc.logger.Infow("checkout session created", "organization_id", cmd.OrganizationID, "plan", plan)

	return &CreateCheckoutResult{CheckoutURL: url}, nil
}
