// Package assets relocates externally hosted images into owned object
// storage so published profiles do not depend on third-party URL
// availability.
package assets

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/beaconhq/beacon/internal/infrastructure/storage"
	"github.com/beaconhq/beacon/internal/shared/config"
	"github.com/beaconhq/beacon/internal/shared/id"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

// Outcome reports how a relocation attempt ended. Degraded is not an
// error: the caller keeps the original URL and carries on.
type Outcome string

const (
	// OutcomeStored means the direct fetch succeeded and the asset now
	// lives in owned storage.
	OutcomeStored Outcome = "stored"
	// OutcomeProxied means the direct fetch was blocked but the image
	// proxy fallback succeeded; the asset lives in owned storage.
	OutcomeProxied Outcome = "proxied"
	// OutcomeDegraded means both fetch paths failed; the original
	// external URL is returned unchanged.
	OutcomeDegraded Outcome = "degraded"
)

// Relocator downloads source images and re-hosts them in object storage.
type Relocator struct {
	httpClient   *resty.Client
	store        storage.ObjectStorage
	proxyBaseURL string
	logger       logger.Interface
}

func NewRelocator(cfg *config.AssetsConfig, store storage.ObjectStorage, log logger.Interface) *Relocator {
	timeout := time.Duration(cfg.FetchTimeoutMS) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &Relocator{
		httpClient:   client,
		store:        store,
		proxyBaseURL: cfg.ProxyBaseURL,
		logger:       log.Named("assets.relocator"),
	}
}

// Relocate fetches sourceURL and uploads the bytes to
// {companyID}/{category}/{id}{ext}. A blocked direct fetch falls back to
// the image proxy once; when both paths fail the original URL is returned
// with OutcomeDegraded so a working external link is kept over a broken
// local copy.
func (r *Relocator) Relocate(ctx context.Context, sourceURL, category, companyID string) (string, Outcome, error) {
	data, contentType, err := r.fetchDirect(ctx, sourceURL)
	outcome := OutcomeStored
	if err != nil {
		r.logger.Warnw("direct asset fetch failed, trying proxy",
			"source_url", sourceURL, "error", err)
		data, contentType, err = r.fetchViaProxy(ctx, sourceURL)
		outcome = OutcomeProxied
	}
	if err != nil {
		r.logger.Warnw("asset relocation failed, keeping original URL",
			"source_url", sourceURL, "company_id", companyID, "error", err)
		return sourceURL, OutcomeDegraded, nil
	}

	objectPath := fmt.Sprintf("%s/%s/%s%s", companyID, category, id.MustGenerate(id.DefaultLength), fileExt(sourceURL, contentType))
	storedURL, err := r.store.Upload(ctx, objectPath, contentType, data)
	if err != nil {
		r.logger.Warnw("asset upload failed, keeping original URL",
			"source_url", sourceURL, "company_id", companyID, "error", err)
		return sourceURL, OutcomeDegraded, nil
	}

	return storedURL, outcome, nil
}

// fetchDirect requests the source with browser-like headers and a Referer
// derived from the source origin. Hotlink protection on small-business
// sites commonly checks both.
func (r *Relocator) fetchDirect(ctx context.Context, sourceURL string) ([]byte, string, error) {
	req := r.httpClient.R().
		SetContext(ctx).
		SetHeader("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36").
		SetHeader("Accept", "image/avif,image/webp,image/*,*/*;q=0.8")

	if origin := originOf(sourceURL); origin != "" {
		req.SetHeader("Referer", origin)
	}

	resp, err := req.Get(sourceURL)
	if err != nil {
		return nil, "", err
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("direct fetch returned %d", resp.StatusCode())
	}
	return resp.Body(), responseContentType(resp), nil
}

// fetchViaProxy hands the URL to a public image proxy that fetches on our
// behalf. The proxy expects a bare host+path, so the scheme is stripped.
func (r *Relocator) fetchViaProxy(ctx context.Context, sourceURL string) ([]byte, string, error) {
	if r.proxyBaseURL == "" {
		return nil, "", fmt.Errorf("no image proxy configured")
	}

	bare := strings.TrimPrefix(strings.TrimPrefix(sourceURL, "https://"), "http://")
	proxyURL := r.proxyBaseURL + url.QueryEscape(bare)

	resp, err := r.httpClient.R().
		SetContext(ctx).
		Get(proxyURL)
	if err != nil {
		return nil, "", err
	}
	if resp.IsError() {
		return nil, "", fmt.Errorf("proxy fetch returned %d", resp.StatusCode())
	}
	return resp.Body(), responseContentType(resp), nil
}

func responseContentType(resp *resty.Response) string {
	ct := resp.Header().Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "image/") {
		ct = http.DetectContentType(resp.Body())
	}
	return ct
}

func fileExt(sourceURL, contentType string) string {
	if u, err := url.Parse(sourceURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

func originOf(sourceURL string) string {
	u, err := url.Parse(sourceURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host + "/"
}
