package mappers

import (
	"github.com/beaconhq/beacon/internal/domain/review"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
)

func ReviewToModel(r *review.Review) *models.ReviewModel {
	return &models.ReviewModel{
		ID:         r.ID(),
		CompanyID:  r.CompanyID(),
		Platform:   r.Platform(),
		Author:     r.Author(),
		Rating:     r.Rating(),
		Text:       r.Text(),
		ReviewDate: r.ReviewDate(),
		URL:        r.URL(),
		CreatedAt:  r.CreatedAt(),
	}
}

func ReviewToDomain(m *models.ReviewModel) *review.Review {
	return review.ReconstructReview(
		m.ID, m.CompanyID, m.Platform, m.Author, m.Rating, m.Text,
		m.ReviewDate, m.URL, m.CreatedAt,
	)
}
