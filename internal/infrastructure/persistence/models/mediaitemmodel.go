package models

import (
	"time"

	"gorm.io/datatypes"
)

type MediaItemModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	CompanyID string         `gorm:"index;size:36;not null"`
	FileURL   string         `gorm:"size:1024;not null"`
	Category  string         `gorm:"size:20;not null;index"`
	Tags      datatypes.JSON `gorm:"type:json"`
	Status    string         `gorm:"size:20;not null;index"`
	Priority  int            `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (MediaItemModel) TableName() string {
	return "media_items"
}
