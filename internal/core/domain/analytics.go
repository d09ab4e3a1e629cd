package domain

import "time"

// DailyAnalytics is one per-website, per-day traffic bucket, upserted by the
// analytics worker as preview views arrive.
type DailyAnalytics struct {
	WebsiteID      string    `json:"website_id"`
	Date           time.Time `json:"date"`
	PageViews      int64     `json:"page_views"`
	UniqueVisitors int64     `json:"unique_visitors"`
}

// PageView is a single preview hit, queued for asynchronous recording.
// VisitorID is an opaque per-browser id used for unique-visitor counting.
type PageView struct {
	WebsiteID string
	VisitorID string
	At        time.Time
}
