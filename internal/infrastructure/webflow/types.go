package webflow

import (
	"fmt"
	"strings"
)

// FieldData is the CMS item payload keyed by collection field slug.
type FieldData map[string]any

// Item is a CMS collection item as returned by the API.
type Item struct {
	ID          string    `json:"id"`
	CmsLocaleID string    `json:"cmsLocaleId,omitempty"`
	LastUpdated string    `json:"lastUpdated,omitempty"`
	CreatedOn   string    `json:"createdOn,omitempty"`
	IsArchived  bool      `json:"isArchived"`
	IsDraft     bool      `json:"isDraft"`
	FieldData   FieldData `json:"fieldData"`
}

// Slug returns the item's slug field, when present.
func (i *Item) Slug() string {
	s, _ := i.FieldData["slug"].(string)
	return s
}

type itemListResponse struct {
	Items []Item `json:"items"`
}

type itemRequest struct {
	IsArchived bool      `json:"isArchived"`
	IsDraft    bool      `json:"isDraft"`
	FieldData  FieldData `json:"fieldData"`
}

type publishRequest struct {
	ItemIDs []string `json:"itemIds"`
}

// apiErrorBody is the structured error payload the CMS returns on non-2xx.
type apiErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details []struct {
		Param       string `json:"param"`
		Description string `json:"description"`
	} `json:"details"`
}

// APIError is a non-2xx response from the CMS.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     []string
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("webflow api error %d (%s): %s [fields: %s]",
			e.StatusCode, e.Code, e.Message, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("webflow api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
}

// IsSlugConflict reports whether the error is a validation rejection naming
// the slug field. A previously archived item keeps its slug, so creates can
// collide even when the live collection shows no match.
func (e *APIError) IsSlugConflict() bool {
	if e.StatusCode != 400 && e.StatusCode != 409 {
		return false
	}
	for _, f := range e.Fields {
		if strings.EqualFold(f, "slug") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(e.Message), "slug")
}
