package webflow

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/shared/config"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

func newTestClient(baseURL string) *Client {
	return NewClient(&config.WebflowConfig{
		BaseURL:      baseURL,
		APIToken:     "test-token",
		CollectionID: "coll-1",
	}, logger.NewLogger())
}

func TestFindItemBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/coll-1/items", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "acme-roofing", r.URL.Query().Get("slug"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(itemListResponse{Items: []Item{
			{ID: "item-other", FieldData: FieldData{"slug": "acme-roofing-austin"}},
			{ID: "item-1", FieldData: FieldData{"slug": "acme-roofing", "name": "Acme Roofing"}},
		}})
	}))
	defer srv.Close()

	item, err := newTestClient(srv.URL).FindItemBySlug(context.Background(), "acme-roofing")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "acme-roofing", item.Slug())
}

func TestFindItemBySlug_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(itemListResponse{Items: []Item{
			{ID: "item-other", FieldData: FieldData{"slug": "someone-else"}},
		}})
	}))
	defer srv.Close()

	item, err := newTestClient(srv.URL).FindItemBySlug(context.Background(), "acme-roofing")
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestCreateItem_SendsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req itemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.True(t, req.IsDraft)
		assert.Equal(t, "Acme Roofing", req.FieldData["name"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(Item{ID: "item-new", IsDraft: true, FieldData: req.FieldData})
	}))
	defer srv.Close()

	item, err := newTestClient(srv.URL).CreateItem(context.Background(), FieldData{
		"name": "Acme Roofing",
		"slug": "acme-roofing",
	})
	require.NoError(t, err)
	assert.Equal(t, "item-new", item.ID)
}

func TestUpdateItem_PatchesByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/collections/coll-1/items/item-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Item{ID: "item-1"})
	}))
	defer srv.Close()

	item, err := newTestClient(srv.URL).UpdateItem(context.Background(), "item-1", FieldData{"name": "Acme"})
	require.NoError(t, err)
	assert.Equal(t, "item-1", item.ID)
}

func TestPublishItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/coll-1/items/publish", r.URL.Path)

		var req publishRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"item-1", "item-2"}, req.ItemIDs)

		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	err := newTestClient(srv.URL).PublishItems(context.Background(), []string{"item-1", "item-2"})
	require.NoError(t, err)
}

func TestCreateItem_ValidationErrorParsed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Validation Error: Provided data is invalid",
			"code":    "validation_error",
			"details": []map[string]string{
				{"param": "slug", "description": "Unique value is already in database"},
			},
		})
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateItem(context.Background(), FieldData{"slug": "taken"})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Code)
	assert.Equal(t, []string{"slug"}, apiErr.Fields)
	assert.True(t, apiErr.IsSlugConflict())
}

func TestAPIError_IsSlugConflict(t *testing.T) {
	tests := []struct {
		name string
		err  APIError
		want bool
	}{
		{"slug field on 400", APIError{StatusCode: 400, Fields: []string{"slug"}}, true},
		{"slug in message on 409", APIError{StatusCode: 409, Message: "slug already exists"}, true},
		{"slug field but server error", APIError{StatusCode: 500, Fields: []string{"slug"}}, false},
		{"unrelated validation error", APIError{StatusCode: 400, Fields: []string{"name"}, Message: "name required"}, false},
		{"case-insensitive field match", APIError{StatusCode: 400, Fields: []string{"Slug"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.IsSlugConflict())
		})
	}
}
