// Package webflow is the REST client for the remote CMS collection the
// publish pipeline writes company profiles into.
package webflow

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/beaconhq/beacon/internal/shared/config"
	"github.com/beaconhq/beacon/internal/shared/logger"
)

const requestTimeout = 30 * time.Second

type Client struct {
	httpClient   *resty.Client
	collectionID string
	logger       logger.Interface
}

func NewClient(cfg *config.WebflowConfig, log logger.Interface) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(requestTimeout).
		SetAuthToken(cfg.APIToken).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:   client,
		collectionID: cfg.CollectionID,
		logger:       log.Named("webflow.client"),
	}
}

// FindItemBySlug returns the live collection item with the given slug, or
// nil when no item matches.
func (c *Client) FindItemBySlug(ctx context.Context, slug string) (*Item, error) {
	var out itemListResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("slug", slug).
		SetResult(&out).
		Get(fmt.Sprintf("/collections/%s/items", c.collectionID))
	if err != nil {
		return nil, fmt.Errorf("failed to query collection items: %w", err)
	}
	if resp.IsError() {
		return nil, parseAPIError(resp)
	}

	for i := range out.Items {
		if out.Items[i].Slug() == slug {
			return &out.Items[i], nil
		}
	}
	return nil, nil
}

// CreateItem creates a collection item as a draft; publishing is a
// separate call.
func (c *Client) CreateItem(ctx context.Context, fields FieldData) (*Item, error) {
	var out Item
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(itemRequest{IsDraft: true, FieldData: fields}).
		SetResult(&out).
		Post(fmt.Sprintf("/collections/%s/items", c.collectionID))
	if err != nil {
		return nil, fmt.Errorf("failed to create collection item: %w", err)
	}
	if resp.IsError() {
		return nil, parseAPIError(resp)
	}
	return &out, nil
}

// UpdateItem patches an existing collection item.
func (c *Client) UpdateItem(ctx context.Context, itemID string, fields FieldData) (*Item, error) {
	var out Item
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(itemRequest{FieldData: fields}).
		SetResult(&out).
		Patch(fmt.Sprintf("/collections/%s/items/%s", c.collectionID, itemID))
	if err != nil {
		return nil, fmt.Errorf("failed to update collection item: %w", err)
	}
	if resp.IsError() {
		return nil, parseAPIError(resp)
	}
	return &out, nil
}

// PublishItems promotes the given item ids from draft to live.
func (c *Client) PublishItems(ctx context.Context, itemIDs []string) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(publishRequest{ItemIDs: itemIDs}).
		Post(fmt.Sprintf("/collections/%s/items/publish", c.collectionID))
	if err != nil {
		return fmt.Errorf("failed to publish collection items: %w", err)
	}
	if resp.IsError() {
		return parseAPIError(resp)
	}
	return nil
}

func parseAPIError(resp *resty.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    resp.Status(),
	}

	var body apiErrorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		}
		apiErr.Code = body.Code
		for _, d := range body.Details {
			if d.Param != "" {
				apiErr.Fields = append(apiErr.Fields, d.Param)
			}
		}
	}

	return apiErr
}
