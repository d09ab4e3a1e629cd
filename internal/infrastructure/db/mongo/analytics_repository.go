package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

const analyticsCollection = "website_analytics"

type AnalyticsRepository struct {
	coll *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{coll: db.Collection(analyticsCollection)}
}

type mongoAnalytics struct {
	WebsiteID      string `bson:"website_id"`
	Date           int64  `bson:"date"`
	PageViews      int64  `bson:"page_views"`
	UniqueVisitors int64  `bson:"unique_visitors"`
}

// RecordView upserts the per-day bucket, incrementing page views and, when
// the visitor is new today, unique visitors.
func (r *AnalyticsRepository) RecordView(ctx context.Context, websiteID string, day time.Time, uniqueVisitor bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	inc := bson.M{"page_views": 1}
	if uniqueVisitor {
		inc["unique_visitors"] = 1
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"website_id": websiteID, "date": day.Unix()},
		bson.M{"$inc": inc},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("record view: %w", err)
	}
	return nil
}

// LastDays returns up to n most recent day buckets, newest first.
func (r *AnalyticsRepository) LastDays(ctx context.Context, websiteID string, n int) ([]*domain.DailyAnalytics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(int64(n))

	cursor, err := r.coll.Find(ctx, bson.M{"website_id": websiteID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list analytics: %w", err)
	}
	defer cursor.Close(ctx)

	var out []*domain.DailyAnalytics
	for cursor.Next(ctx) {
		var ma mongoAnalytics
		if err := cursor.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode analytics: %w", err)
		}
		out = append(out, &domain.DailyAnalytics{
			WebsiteID:      ma.WebsiteID,
			Date:           unixToTime(ma.Date),
			PageViews:      ma.PageViews,
			UniqueVisitors: ma.UniqueVisitors,
		})
	}
	return out, cursor.Err()
}

// EnsureIndexes creates the unique website+date bucket index.
func (r *AnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "website_id", Value: 1}, {Key: "date", Value: -1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
