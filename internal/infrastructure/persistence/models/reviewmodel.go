package models

import "time"

type ReviewModel struct {
	ID         string  `gorm:"primaryKey;size:36"`
	CompanyID  string  `gorm:"index;size:36;not null"`
	Platform   string  `gorm:"size:64"`
	Author     string  `gorm:"size:255"`
	Rating     float64 `gorm:"not null;default:0"`
	Text       string  `gorm:"type:text"`
	ReviewDate *string `gorm:"size:64"`
	URL        *string `gorm:"size:1024"`
	CreatedAt  time.Time
}

func (ReviewModel) TableName() string {
	return "reviews"
}
