package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// webhookEventKeyPrefix is the prefix for processed webhook event keys
	webhookEventKeyPrefix = "billing_webhook:"
	// DefaultWebhookEventTTL is how long a processed event id is remembered.
	// Stripe retries failed deliveries for up to 3 days.
	DefaultWebhookEventTTL = 72 * time.Hour
)

// WebhookEventDeduper provides Redis-based idempotency for webhook
// deliveries: the processor retries events, and company creation must not
// run twice for the same event id.
type WebhookEventDeduper struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWebhookEventDeduper(client *redis.Client) *WebhookEventDeduper {
	return &WebhookEventDeduper{client: client, ttl: DefaultWebhookEventTTL}
}

func (d *WebhookEventDeduper) buildKey(eventID string) string {
	return webhookEventKeyPrefix + eventID
}

// MarkProcessed atomically records the event id. It returns true when this
// call was the first to record it, false when the event was already seen.
func (d *WebhookEventDeduper) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	first, err := d.client.SetNX(ctx, d.buildKey(eventID), "1", d.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}
	return first, nil
}

// Unmark forgets the event id so the processor's redelivery of a failed
// event is handled instead of dropped as a duplicate.
func (d *WebhookEventDeduper) Unmark(ctx context.Context, eventID string) error {
	if err := d.client.Del(ctx, d.buildKey(eventID)).Err(); err != nil {
		return fmt.Errorf("failed to release webhook event: %w", err)
	}
	return nil
}
