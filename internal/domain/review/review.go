// Package review models customer reviews materialized from intake data.
package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beaconhq/beacon/internal/shared/biztime"
)

type Review struct {
	id         string
	companyID  string
	platform   string
	author     string
	rating     float64
	text       string
	reviewDate *string
	url        *string
	createdAt  time.Time
}

func NewReview(companyID, platform, author string, rating float64, text string) (*Review, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if text == "" && author == "" {
		return nil, fmt.Errorf("review must have text or an author")
	}
	if rating < 0 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 0 and 5")
	}

	return &Review{
		id:        uuid.NewString(),
		companyID: companyID,
		platform:  platform,
		author:    author,
		rating:    rating,
		text:      text,
		createdAt: biztime.NowUTC(),
	}, nil
}

func (r *Review) SetReviewDate(date string) {
	if date != "" {
		r.reviewDate = &date
	}
}

func (r *Review) SetURL(url string) {
	if url != "" {
		r.url = &url
	}
}

func (r *Review) ID() string           { return r.id }
func (r *Review) CompanyID() string    { return r.companyID }
func (r *Review) Platform() string     { return r.platform }
func (r *Review) Author() string       { return r.author }
func (r *Review) Rating() float64      { return r.rating }
func (r *Review) Text() string         { return r.text }
func (r *Review) ReviewDate() *string  { return r.reviewDate }
func (r *Review) URL() *string         { return r.url }
func (r *Review) CreatedAt() time.Time { return r.createdAt }

// ReconstructReview rehydrates a review from persistence.
func ReconstructReview(id, companyID, platform, author string, rating float64, text string, reviewDate, url *string, createdAt time.Time) *Review {
	return &Review{
		id:         id,
		companyID:  companyID,
		platform:   platform,
		author:     author,
		rating:     rating,
		text:       text,
		reviewDate: reviewDate,
		url:        url,
		createdAt:  createdAt,
	}
}
