package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const visitTTL = 48 * time.Hour

// VisitorDeduper tracks which visitors have already been counted for a
// website on a given day. Key format: visit:<website_id>:<visitor_id>:<date>
type VisitorDeduper struct {
	client *redis.Client
}

// NewVisitorDeduper creates a VisitorDeduper wrapping the given Redis client.
func NewVisitorDeduper(client *redis.Client) *VisitorDeduper {
	return &VisitorDeduper{client: client}
}

// SeenToday reports whether this visitor has already been counted for the
// website on the given day.
func (d *VisitorDeduper) SeenToday(ctx context.Context, websiteID, visitorID string, day time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(websiteID, visitorID, day)).Result()
	if err != nil {
		return false, fmt.Errorf("visit check: %w", err)
	}
	return n > 0, nil
}

// MarkSeen records that the visitor has been counted (expires after visitTTL).
func (d *VisitorDeduper) MarkSeen(ctx context.Context, websiteID, visitorID string, day time.Time) error {
	return d.client.Set(ctx, d.key(websiteID, visitorID, day), "1", visitTTL).Err()
}

func (d *VisitorDeduper) key(websiteID, visitorID string, day time.Time) string {
	return fmt.Sprintf("visit:%s:%s:%s", websiteID, visitorID, day.Format("2006-01-02"))
}
