package models

import (
	"time"

	"gorm.io/datatypes"
)

type IntakeModel struct {
	ID        string         `gorm:"primaryKey;size:36"`
	CompanyID string         `gorm:"uniqueIndex;size:36;not null"`
	RomaData  datatypes.JSON `gorm:"type:json;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (IntakeModel) TableName() string {
	return "intakes"
}
