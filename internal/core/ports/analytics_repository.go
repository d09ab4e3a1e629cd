package ports

import (
	"context"
	"time"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// AnalyticsRepository persists per-day traffic buckets.
type AnalyticsRepository interface {
	// RecordView increments the day bucket for the website, adding a unique
	// visitor when uniqueVisitor is true. The bucket is created on first hit.
	RecordView(ctx context.Context, websiteID string, day time.Time, uniqueVisitor bool) error
	// LastDays returns up to n most recent day buckets, newest first.
	LastDays(ctx context.Context, websiteID string, n int) ([]*domain.DailyAnalytics, error)
}

// VisitorDeduper answers whether a visitor was already counted for a website
// on a given day. Backed by Redis with a daily TTL.
type VisitorDeduper interface {
	SeenToday(ctx context.Context, websiteID, visitorID string, day time.Time) (bool, error)
	MarkSeen(ctx context.Context, websiteID, visitorID string, day time.Time) error
}
