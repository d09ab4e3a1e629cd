package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const websitesCollection = "websites"

type WebsiteRepository struct {
	coll *mongo.Collection
}

func NewWebsiteRepository(db *mongo.Database) *WebsiteRepository {
	return &WebsiteRepository{coll: db.Collection(websitesCollection)}
}

type mongoWebsite struct {
	ID           primitive.ObjectID     `bson:"_id,omitempty"`
	Title        string                 `bson:"title"`
	Description  string                 `bson:"description,omitempty"`
	BusinessType string                 `bson:"business_type"`
	Industry     string                 `bson:"industry"`
	Template     string                 `bson:"template"`
	Content      domain.ContentDocument `bson:"content"`
	OwnerID      string                 `bson:"owner_id"`
	Published    bool                   `bson:"published"`
	AIGenerated  bool                   `bson:"ai_generated"`
	CreatedAt    int64                  `bson:"created_at"`
	UpdatedAt    int64                  `bson:"updated_at"`
	PublishedAt  int64                  `bson:"published_at,omitempty"`
}

func (r *WebsiteRepository) Create(ctx context.Context, w *domain.Website) (*domain.Website, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoWebsite{
		Title:        w.Title,
		Description:  w.Description,
		BusinessType: w.BusinessType,
		Industry:     w.Industry,
		Template:     string(w.Template),
		Content:      w.Content,
		OwnerID:      w.OwnerID,
		Published:    w.Published,
		AIGenerated:  w.AIGenerated,
		CreatedAt:    w.CreatedAt.Unix(),
		UpdatedAt:    w.UpdatedAt.Unix(),
	}
	if w.PublishedAt != nil {
		doc.PublishedAt = w.PublishedAt.Unix()
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert website: %w", err)
	}

	created := *w
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *WebsiteRepository) FindByID(ctx context.Context, id string) (*domain.Website, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mw mongoWebsite
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mw); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWebsiteNotFound
		}
		return nil, fmt.Errorf("find website: %w", err)
	}
	return mw.toDomain(), nil
}

func (r *WebsiteRepository) List(ctx context.Context, filter ports.ListWebsitesFilter) ([]*domain.Website, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list websites: %w", err)
	}
	defer cursor.Close(ctx)

	var websites []*domain.Website
	for cursor.Next(ctx) {
		var mw mongoWebsite
		if err := cursor.Decode(&mw); err != nil {
			return nil, fmt.Errorf("decode website: %w", err)
		}
		websites = append(websites, mw.toDomain())
	}
	return websites, cursor.Err()
}

func (r *WebsiteRepository) Update(ctx context.Context, id string, update ports.WebsiteUpdate) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	fields := bson.M{"updated_at": time.Now().UTC().Unix()}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Template != nil {
		fields["template"] = string(*update.Template)
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}
	if update.Published != nil {
		fields["published"] = *update.Published
	}
	if update.PublishedAt != nil {
		fields["published_at"] = update.PublishedAt.Unix()
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update website: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrWebsiteNotFound
	}
	return nil
}

func (r *WebsiteRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete website: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrWebsiteNotFound
	}
	return nil
}

func (r *WebsiteRepository) Count(ctx context.Context, filter ports.ListWebsitesFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.coll.CountDocuments(ctx, buildFilter(filter))
}

// EnsureIndexes creates the owner and published lookup indexes.
func (r *WebsiteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "published", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func buildFilter(filter ports.ListWebsitesFilter) bson.M {
	query := bson.M{}
	if filter.OwnerID != "" {
		query["owner_id"] = filter.OwnerID
	}
	if filter.PublishedOnly {
		query["published"] = true
	}
	return query
}

func (mw *mongoWebsite) toDomain() *domain.Website {
	w := &domain.Website{
		ID:           mw.ID.Hex(),
		Title:        mw.Title,
		Description:  mw.Description,
		BusinessType: mw.BusinessType,
		Industry:     mw.Industry,
		Template:     domain.Template(mw.Template),
		Content:      mw.Content,
		OwnerID:      mw.OwnerID,
		Published:    mw.Published,
		AIGenerated:  mw.AIGenerated,
		CreatedAt:    unixToTime(mw.CreatedAt),
		UpdatedAt:    unixToTime(mw.UpdatedAt),
	}
	if mw.PublishedAt != 0 {
		t := unixToTime(mw.PublishedAt)
		w.PublishedAt = &t
	}
	return w
}
