package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/beaconhq/beacon/internal/domain/media"
	vo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/infrastructure/persistence/models"
)

func MediaItemToModel(m *media.MediaItem) (*models.MediaItemModel, error) {
	var tags datatypes.JSON
	if len(m.Tags()) > 0 {
		raw, err := json.Marshal(m.Tags())
		if err != nil {
			return nil, fmt.Errorf("failed to encode tags: %w", err)
		}
		tags = datatypes.JSON(raw)
	}

	return &models.MediaItemModel{
		ID:        m.ID(),
		CompanyID: m.CompanyID(),
		FileURL:   m.FileURL(),
		Category:  m.Category().String(),
		Tags:      tags,
		Status:    m.Status().String(),
		Priority:  m.Priority(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}, nil
}

func MediaItemToDomain(m *models.MediaItemModel) (*media.MediaItem, error) {
	category := vo.Category(m.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category in media_items row %s: %s", m.ID, m.Category)
	}
	status := vo.Status(m.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status in media_items row %s: %s", m.ID, m.Status)
	}

	var tags []string
	if len(m.Tags) > 0 {
		if err := json.Unmarshal(m.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to decode tags for media item %s: %w", m.ID, err)
		}
	}

	return media.ReconstructMediaItem(
		m.ID, m.CompanyID, m.FileURL, category, tags, status, m.Priority,
		m.CreatedAt, m.UpdatedAt,
	), nil
}
