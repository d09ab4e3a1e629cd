package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// AnalyticsService processes preview page-view events off the request path.
// Unique visitors are deduplicated per website per day via Redis before the
// Mongo day bucket is upserted.
type AnalyticsService struct {
	analytics ports.AnalyticsRepository
	dedup     ports.VisitorDeduper
	logger    zerolog.Logger
}

func NewAnalyticsService(analytics ports.AnalyticsRepository, dedup ports.VisitorDeduper, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{analytics: analytics, dedup: dedup, logger: logger}
}

// Process records one page view. A dedup failure degrades to counting the
// view as non-unique rather than dropping it.
func (s *AnalyticsService) Process(ctx context.Context, view domain.PageView) error {
	day := view.At.UTC().Truncate(24 * time.Hour)

	unique := false
	if view.VisitorID != "" {
		seen, err := s.dedup.SeenToday(ctx, view.WebsiteID, view.VisitorID, day)
		switch {
		case err != nil:
			s.logger.Warn().Err(err).Str("website_id", view.WebsiteID).Msg("visitor dedup check failed")
		case !seen:
			unique = true
			if err := s.dedup.MarkSeen(ctx, view.WebsiteID, view.VisitorID, day); err != nil {
				s.logger.Warn().Err(err).Str("website_id", view.WebsiteID).Msg("visitor dedup mark failed")
			}
		}
	}

	if err := s.analytics.RecordView(ctx, view.WebsiteID, day, unique); err != nil {
		s.logger.Error().Err(err).Str("website_id", view.WebsiteID).Msg("failed to record page view")
		return err
	}
	return nil
}
