package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/beaconhq/beacon/internal/domain/company"
	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
)

func CompanyToModel(c *company.Company) (*models.CompanyModel, error) {
	badges, err := toJSON(c.Badges())
	if err != nil {
		return nil, fmt.Errorf("failed to encode badges: %w", err)
	}
	socials, err := toJSON(c.SocialLinks())
	if err != nil {
		return nil, fmt.Errorf("failed to encode social links: %w", err)
	}

	return &models.CompanyModel{
		ID:                   c.ID(),
		OrganizationID:       c.OrganizationID(),
		Name:                 c.Name(),
		Slug:                 c.Slug(),
		Website:              c.Website(),
		Phone:                c.Phone(),
		Email:                c.Email(),
		Address:              c.Address(),
		City:                 c.City(),
		State:                c.State(),
		Zip:                  c.Zip(),
		Plan:                 c.Plan().String(),
		Status:               c.Status().String(),
		Tagline:              c.Tagline(),
		About:                c.About(),
		AISummary:            c.AISummary(),
		PricingInfo:          c.PricingInfo(),
		LogoURL:              c.LogoURL(),
		Badges:               badges,
		SocialLinks:          socials,
		WebflowProfileID:     c.WebflowProfileID(),
		WebflowSlug:          c.WebflowSlug(),
		StripeCustomerID:     c.StripeCustomerID(),
		StripeSubscriptionID: c.StripeSubscriptionID(),
		CreatedAt:            c.CreatedAt(),
		UpdatedAt:            c.UpdatedAt(),
	}, nil
}

func CompanyToDomain(m *models.CompanyModel) (*company.Company, error) {
	plan := vo.Plan(m.Plan)
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan in companies row %s: %s", m.ID, m.Plan)
	}
	status := vo.Status(m.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status in companies row %s: %s", m.ID, m.Status)
	}

	var badges []string
	if len(m.Badges) > 0 {
		if err := json.Unmarshal(m.Badges, &badges); err != nil {
			return nil, fmt.Errorf("failed to decode badges for company %s: %w", m.ID, err)
		}
	}
	var socials map[string]string
	if len(m.SocialLinks) > 0 {
		if err := json.Unmarshal(m.SocialLinks, &socials); err != nil {
			return nil, fmt.Errorf("failed to decode social links for company %s: %w", m.ID, err)
		}
	}

	return company.ReconstructCompany(
		m.ID, m.OrganizationID, m.Name, m.Slug,
		m.Website, m.Phone, m.Email, m.Address, m.City, m.State, m.Zip,
		plan, status,
		m.Tagline, m.About, m.AISummary, m.PricingInfo, m.LogoURL,
		badges, socials,
		m.WebflowProfileID, m.WebflowSlug,
		m.StripeCustomerID, m.StripeSubscriptionID,
		m.CreatedAt, m.UpdatedAt,
	), nil
}

func toJSON(v any) (datatypes.JSON, error) {
	if v == nil {
		return nil, nil
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}
