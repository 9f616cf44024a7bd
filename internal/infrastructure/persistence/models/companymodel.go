package models

import (
	"time"

	"gorm.io/datatypes"
)

type CompanyModel struct {
	ID             string `gorm:"primaryKey;size:36"`
	OrganizationID string `gorm:"index;size:36;not null"`

	Name    string  `gorm:"size:255;not null"`
	Slug    string  `gorm:"index;size:255;not null"`
	Website *string `gorm:"size:512"`

	Phone   *string `gorm:"size:32"`
	Email   *string `gorm:"size:255"`
	Address *string `gorm:"size:512"`
	City    *string `gorm:"size:128"`
	State   *string `gorm:"size:64"`
	Zip     *string `gorm:"size:16"`

	Plan   string `gorm:"size:20;not null"`
	Status string `gorm:"size:20;not null;index"`

	Tagline     *string `gorm:"size:512"`
	About       *string `gorm:"type:text"`
	AISummary   *string `gorm:"column:ai_summary;type:text"`
	PricingInfo *string `gorm:"type:text"`
	LogoURL     *string `gorm:"size:1024"`

	Badges      datatypes.JSON `gorm:"type:json"`
	SocialLinks datatypes.JSON `gorm:"type:json"`

	WebflowProfileID *string `gorm:"size:64;index"`
	WebflowSlug      *string `gorm:"size:255"`

	StripeCustomerID     *string `gorm:"size:64;index"`
	StripeSubscriptionID *string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanyModel) TableName() string {
	return "companies"
}
