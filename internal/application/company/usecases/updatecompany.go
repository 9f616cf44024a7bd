package usecases

import (
	"context"
	"fmt"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	apperrors "github.com/beaconhq/beacon/internal/shared/errors"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	OrganizationID string
	CompanyID      string
	Profile        company.ProfileFields
	Status         *string
	AISummary      *string
	Badges         []string
	SocialLinks    map[string]string
}

type UpdateCompanyResult struct {
	Company       *company.Company
	FieldsUpdated int
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*UpdateCompanyResult, error) {
	c, err := uc.companyRepo.GetByID(ctx, cmd.OrganizationID, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	applied := c.ApplyProfileFields(cmd.Profile)

	if cmd.AISummary != nil {
		c.SetAISummary(*cmd.AISummary)
		applied++
	}
	if cmd.Badges != nil {
		c.SetBadges(cmd.Badges)
		applied++
	}
	if cmd.SocialLinks != nil {
		c.SetSocialLinks(cmd.SocialLinks)
		applied++
	}

	if cmd.Status != nil {
		if err := c.TransitionStatus(vo.Status(*cmd.Status)); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		applied++
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "company_id", c.ID())
		return nil, fmt.Errorf("failed to update company: %w", err)
	}

	uc.logger.Infow("company updated", "company_id", c.ID(), "fields_updated", applied)

	return &UpdateCompanyResult{Company: c, FieldsUpdated: applied}, nil
}
