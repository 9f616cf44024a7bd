// Package media models uploaded and relocated assets owned by a company.
package media

import (
	"fmt"
	"time"

	vo "github.com/beaconhq/beacon/internal/domain/media/valueobjects"
	"github.com/beaconhq/beacon/internal/shared/biztime"
	"github.com/beaconhq/beacon/internal/shared/id"
)

type MediaItem struct {
	id        string
	companyID string
	fileURL   string
	category  vo.Category
	tags      []string
	status    vo.Status
	priority  int
	createdAt time.Time
	updatedAt time.Time
}

func NewMediaItem(companyID, fileURL string, category vo.Category) (*MediaItem, error) {
	if companyID == "" {
		return nil, fmt.Errorf("company ID is required")
	}
	if fileURL == "" {
		return nil, fmt.Errorf("file URL is required")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid media category: %s", category)
	}

	itemID, err := id.GenerateWithPrefix(id.PrefixMediaItem, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate media item id: %w", err)
	}

	now := biztime.NowUTC()
	return &MediaItem{
		id:        itemID,
		companyID: companyID,
		fileURL:   fileURL,
		category:  category,
		status:    vo.StatusPending,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// SetTags replaces the free-form tag list.
func (m *MediaItem) SetTags(tags []string) {
	m.tags = tags
	m.updatedAt = biztime.NowUTC()
}

// SetStatus moves the item between pending and active.
func (m *MediaItem) SetStatus(status vo.Status) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid media status: %s", status)
	}
	m.status = status
	m.updatedAt = biztime.NowUTC()
	return nil
}

// SetPriority sets the gallery ordering weight (lower sorts first).
func (m *MediaItem) SetPriority(priority int) {
	m.priority = priority
	m.updatedAt = biztime.NowUTC()
}

// HasTag reports whether the item carries the given tag.
func (m *MediaItem) HasTag(tag string) bool {
	for _, t := range m.tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsActiveLogo reports whether this item should be mirrored into the
// owning company's logo_url.
func (m *MediaItem) IsActiveLogo() bool {
	return m.status == vo.StatusActive && (m.category == vo.CategoryLogo || m.HasTag("logo"))
}

func (m *MediaItem) ID() string            { return m.id }
func (m *MediaItem) CompanyID() string     { return m.companyID }
func (m *MediaItem) FileURL() string       { return m.fileURL }
func (m *MediaItem) Category() vo.Category { return m.category }
func (m *MediaItem) Tags() []string        { return m.tags }
func (m *MediaItem) Status() vo.Status     { return m.status }
func (m *MediaItem) Priority() int         { return m.priority }
func (m *MediaItem) CreatedAt() time.Time  { return m.createdAt }
func (m *MediaItem) UpdatedAt() time.Time  { return m.updatedAt }

// ReconstructMediaItem rehydrates a media item from persistence.
func ReconstructMediaItem(id, companyID, fileURL string, category vo.Category, tags []string, status vo.Status, priority int, createdAt, updatedAt time.Time) *MediaItem {
	return &MediaItem{
		id:        id,
		companyID: companyID,
		fileURL:   fileURL,
		category:  category,
		tags:      tags,
		status:    status,
		priority:  priority,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}
