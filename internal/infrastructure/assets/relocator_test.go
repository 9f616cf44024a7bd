package assets

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beaconhq/beacon/internal/shared/config"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

type mockStore struct {
	uploadFn func(ctx context.Context, objectPath, contentType string, data []byte) (string, error)
	paths    []string
}

func (m *mockStore) Upload(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
	m.paths = append(m.paths, objectPath)
	if m.uploadFn != nil {
		return m.uploadFn(ctx, objectPath, contentType, data)
	}
	return "https://cdn.owned.example/" + objectPath, nil
}

var pngBytes = []byte("\x89PNG\r\n\x1a\nfakeimagedata")

func newTestRelocator(proxyBaseURL string, store *mockStore) *Relocator {
	cfg := &config.AssetsConfig{
		ProxyBaseURL:   proxyBaseURL,
		FetchTimeoutMS: 2000,
	}
	return NewRelocator(cfg, store, logger.NewLogger())
}

func TestRelocate_DirectFetchStores(t *testing.T) {
	var gotReferer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReferer = r.Header.Get("Referer")
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	store := &mockStore{}
	rel := newTestRelocator("", store)

	storedURL, outcome, err := rel.Relocate(context.Background(), srv.URL+"/photos/team.png", "photo", "company-1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeStored, outcome)
	assert.True(t, strings.HasPrefix(storedURL, "https://cdn.owned.example/company-1/photo/"))
	assert.True(t, strings.HasSuffix(storedURL, ".png"))
	assert.Equal(t, srv.URL+"/", gotReferer)
	require.Len(t, store.paths, 1)
	assert.True(t, strings.HasPrefix(store.paths[0], "company-1/photo/"))
}

func TestRelocate_BlockedDirectFallsBackToProxy(t *testing.T) {
	direct := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "hotlinking forbidden", http.StatusForbidden)
	}))
	defer direct.Close()

	var proxied string
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		proxied = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write([]byte("jpegdata"))
	}))
	defer proxy.Close()

	store := &mockStore{}
	rel := newTestRelocator(proxy.URL+"/fetch?url=", store)

	sourceURL := direct.URL + "/gallery/before.jpg"
	storedURL, outcome, err := rel.Relocate(context.Background(), sourceURL, "photo", "company-1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeProxied, outcome)
	assert.True(t, strings.HasPrefix(storedURL, "https://cdn.owned.example/"))
	assert.Equal(t, strings.TrimPrefix(sourceURL, "http://"), proxied)
}

func TestRelocate_BothPathsFailKeepsOriginalURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	store := &mockStore{}
	rel := newTestRelocator(srv.URL+"/fetch?url=", store)

	sourceURL := srv.URL + "/logo.png"
	storedURL, outcome, err := rel.Relocate(context.Background(), sourceURL, "logo", "company-1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDegraded, outcome)
	assert.Equal(t, sourceURL, storedURL)
	assert.Empty(t, store.paths)
}

func TestRelocate_UploadFailureKeepsOriginalURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(pngBytes)
	}))
	defer srv.Close()

	store := &mockStore{
		uploadFn: func(ctx context.Context, objectPath, contentType string, data []byte) (string, error) {
			return "", fmt.Errorf("bucket unavailable")
		},
	}
	rel := newTestRelocator("", store)

	sourceURL := srv.URL + "/logo.png"
	storedURL, outcome, err := rel.Relocate(context.Background(), sourceURL, "logo", "company-1")
	require.NoError(t, err)

	assert.Equal(t, OutcomeDegraded, outcome)
	assert.Equal(t, sourceURL, storedURL)
}

func TestFileExt(t *testing.T) {
	tests := []struct {
		name        string
		sourceURL   string
		contentType string
		want        string
	}{
		{"from url path", "https://a.example/img/photo.webp", "image/png", ".webp"},
		{"query ignored", "https://a.example/photo.png?w=800", "image/jpeg", ".png"},
		{"no ext falls back to content type", "https://a.example/img/12345", "image/png", ".png"},
		{"unknown content type defaults to jpg", "https://a.example/img/12345", "application/octet-stream", ".jpg"},
		{"overlong ext ignored", "https://a.example/file.download", "image/gif", ".gif"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fileExt(tt.sourceURL, tt.contentType))
		})
	}
}
