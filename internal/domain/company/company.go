package company

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "github.com/beaconhq/beacon/internal/domain/company/valueobjects"
	"github.com/beaconhq/beacon/internal/shared/biztime"
)

// Company is the tenant-scoped business record. It is the system of record
// for publishing once intake data has been extracted onto it.
type Company struct {
	id             string
	organizationID string

	name    string
	slug    string
	website *string

	phone   *string
	email   *string
	address *string
	city    *string
	state   *string
	zip     *string

	plan   vo.Plan
	status vo.Status

	tagline     *string
	about       *string
	aiSummary   *string
	pricingInfo *string
	logoURL     *string

	badges      []string
	socialLinks map[string]string

	webflowProfileID *string
	webflowSlug      *string

	stripeCustomerID     *string
	stripeSubscriptionID *string

	createdAt time.Time
	updatedAt time.Time
}

// NewCompany creates a company in the NEW state (dashboard form path).
func NewCompany(organizationID, name string, plan vo.Plan) (*Company, error) {
	return newCompany(organizationID, name, plan, vo.StatusNew)
}

// NewPendingCompany creates a company in the PENDING state (payment
// webhook path, before any staff action).
func NewPendingCompany(organizationID, name string, plan vo.Plan) (*Company, error) {
	return newCompany(organizationID, name, plan, vo.StatusPending)
}

func newCompany(organizationID, name string, plan vo.Plan, status vo.Status) (*Company, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("organization ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}

	now := biztime.NowUTC()
	return &Company{
		id:             uuid.NewString(),
		organizationID: organizationID,
		name:           name,
		slug:           vo.ComputeSlug(name),
		plan:           plan,
		status:         status,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ProfileFields is a partial update of the company's marketing profile.
// Nil fields are left untouched so that a sparse extraction never
// overwrites previously good data with blanks.
type ProfileFields struct {
	Name        *string
	Website     *string
	Phone       *string
	Email       *string
	Address     *string
	City        *string
	State       *string
	Zip         *string
	Tagline     *string
	About       *string
	PricingInfo *string
}

// ApplyProfileFields merges non-nil fields onto the company and returns the
// number of fields that were applied.
func (c *Company) ApplyProfileFields(f ProfileFields) int {
	applied := 0
	if f.Name != nil && *f.Name != "" {
		c.name = *f.Name
		c.slug = vo.ComputeSlug(*f.Name)
		applied++
	}
	for dst, src := range map[**string]*string{
		&c.website:     f.Website,
		&c.phone:       f.Phone,
		&c.email:       f.Email,
		&c.address:     f.Address,
		&c.city:        f.City,
		&c.state:       f.State,
		&c.zip:         f.Zip,
		&c.tagline:     f.Tagline,
		&c.about:       f.About,
		&c.pricingInfo: f.PricingInfo,
	} {
		if src != nil {
			*dst = src
			applied++
		}
	}
	if applied > 0 {
		c.updatedAt = biztime.NowUTC()
	}
	return applied
}

// SetBadges replaces the trust badges shown on the published profile.
func (c *Company) SetBadges(badges []string) {
	c.badges = badges
	c.updatedAt = biztime.NowUTC()
}

// SetSocialLinks replaces the social profile links keyed by platform.
func (c *Company) SetSocialLinks(links map[string]string) {
	c.socialLinks = links
	c.updatedAt = biztime.NowUTC()
}

// SetLogoURL mirrors an active logo media item onto the company.
func (c *Company) SetLogoURL(url string) {
	c.logoURL = &url
	c.updatedAt = biztime.NowUTC()
}

// SetAISummary stores the operator-reviewed summary text.
func (c *Company) SetAISummary(summary string) {
	c.aiSummary = &summary
	c.updatedAt = biztime.NowUTC()
}

// LinkRemoteProfile records the CMS item created or updated for this
// company. Called after a successful publish.
func (c *Company) LinkRemoteProfile(remoteID, remoteSlug string) error {
	if remoteID == "" {
		return fmt.Errorf("remote profile ID is required")
	}
	c.webflowProfileID = &remoteID
	c.webflowSlug = &remoteSlug
	c.updatedAt = biztime.NowUTC()
	return nil
}

// LinkBilling records the payment-processor identifiers for this company.
func (c *Company) LinkBilling(customerID, subscriptionID string) {
	if customerID != "" {
		c.stripeCustomerID = &customerID
	}
	if subscriptionID != "" {
		c.stripeSubscriptionID = &subscriptionID
	}
	c.updatedAt = biztime.NowUTC()
}

// TransitionStatus moves the company through its onboarding lifecycle.
func (c *Company) TransitionStatus(target vo.Status) error {
	if !target.IsValid() {
		return fmt.Errorf("invalid status: %s", target)
	}
	if c.status == target {
		return nil
	}
	if !c.status.CanTransitionTo(target) {
		return fmt.Errorf("cannot transition company status from %s to %s", c.status, target)
	}
	c.status = target
	c.updatedAt = biztime.NowUTC()
	return nil
}

func (c *Company) ID() string                     { return c.id }
func (c *Company) OrganizationID() string         { return c.organizationID }
func (c *Company) Name() string                   { return c.name }
func (c *Company) Slug() string                   { return c.slug }
func (c *Company) Website() *string               { return c.website }
func (c *Company) Phone() *string                 { return c.phone }
func (c *Company) Email() *string                 { return c.email }
func (c *Company) Address() *string               { return c.address }
func (c *Company) City() *string                  { return c.city }
func (c *Company) State() *string                 { return c.state }
func (c *Company) Zip() *string                   { return c.zip }
func (c *Company) Plan() vo.Plan                  { return c.plan }
func (c *Company) Status() vo.Status              { return c.status }
func (c *Company) Tagline() *string               { return c.tagline }
func (c *Company) About() *string                 { return c.about }
func (c *Company) AISummary() *string             { return c.aiSummary }
func (c *Company) PricingInfo() *string           { return c.pricingInfo }
func (c *Company) LogoURL() *string               { return c.logoURL }
func (c *Company) Badges() []string               { return c.badges }
func (c *Company) SocialLinks() map[string]string { return c.socialLinks }
func (c *Company) WebflowProfileID() *string      { return c.webflowProfileID }
func (c *Company) WebflowSlug() *string           { return c.webflowSlug }
func (c *Company) StripeCustomerID() *string      { return c.stripeCustomerID }
func (c *Company) StripeSubscriptionID() *string  { return c.stripeSubscriptionID }
func (c *Company) CreatedAt() time.Time           { return c.createdAt }
func (c *Company) UpdatedAt() time.Time           { return c.updatedAt }

// ReconstructCompany rehydrates a company from persistence. It bypasses
// creation invariants and must only be used by mappers.
func ReconstructCompany(
	id, organizationID, name, slug string,
	website, phone, email, address, city, state, zip *string,
	plan vo.Plan, status vo.Status,
	tagline, about, aiSummary, pricingInfo, logoURL *string,
	badges []string, socialLinks map[string]string,
	webflowProfileID, webflowSlug *string,
	stripeCustomerID, stripeSubscriptionID *string,
	createdAt, updatedAt time.Time,
) *Company {
	return &Company{
		id:                   id,
		organizationID:       organizationID,
		name:                 name,
		slug:                 slug,
		website:              website,
		phone:                phone,
		email:                email,
		address:              address,
		city:                 city,
		state:                state,
		zip:                  zip,
		plan:                 plan,
		status:               status,
		tagline:              tagline,
		about:                about,
		aiSummary:            aiSummary,
		pricingInfo:          pricingInfo,
		logoURL:              logoURL,
		badges:               badges,
		socialLinks:          socialLinks,
		webflowProfileID:     webflowProfileID,
		webflowSlug:          webflowSlug,
		stripeCustomerID:     stripeCustomerID,
		stripeSubscriptionID: stripeSubscriptionID,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}
