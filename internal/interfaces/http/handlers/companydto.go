package handlers

import (
	"time"

	"github.com/beaconhq/beacon/internal/domain/company"
)

// CompanyDTO is the wire shape of a company profile.
type CompanyDTO struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Slug             string            `json:"slug"`
	Plan             string            `json:"plan"`
	Status           string            `json:"status"`
	Website          *string           `json:"website,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Email            *string           `json:"email,omitempty"`
	Address          *string           `json:"address,omitempty"`
	City             *string           `json:"city,omitempty"`
	State            *string           `json:"state,omitempty"`
	Zip              *string           `json:"zip,omitempty"`
	Tagline          *string           `json:"tagline,omitempty"`
	About            *string           `json:"about,omitempty"`
	AISummary        *string           `json:"ai_summary,omitempty"`
	PricingInfo      *string           `json:"pricing_info,omitempty"`
	LogoURL          *string           `json:"logo_url,omitempty"`
	Badges           []string          `json:"badges,omitempty"`
	SocialLinks      map[string]string `json:"social_links,omitempty"`
	WebflowProfileID *string           `json:"webflow_profile_id,omitempty"`
	WebflowSlug      *string           `json:"webflow_slug,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func NewCompanyDTO(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:               c.ID(),
		Name:             c.Name(),
		Slug:             c.Slug(),
		Plan:             c.Plan().String(),
		Status:           string(c.Status()),
		Website:          c.Website(),
		Phone:            c.Phone(),
		Email:            c.Email(),
		Address:          c.Address(),
		City:             c.City(),
		State:            c.State(),
		Zip:              c.Zip(),
		Tagline:          c.Tagline(),
		About:            c.About(),
		AISummary:        c.AISummary(),
		PricingInfo:      c.PricingInfo(),
		LogoURL:          c.LogoURL(),
		Badges:           c.Badges(),
		SocialLinks:      c.SocialLinks(),
		WebflowProfileID: c.WebflowProfileID(),
		WebflowSlug:      c.WebflowSlug(),
		CreatedAt:        c.CreatedAt(),
		UpdatedAt:        c.UpdatedAt(),
	}
}

func NewCompanyDTOs(companies []*company.Company) []CompanyDTO {
	dtos := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		dtos = append(dtos, NewCompanyDTO(c))
	}
	return dtos
}
