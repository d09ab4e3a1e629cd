package ports

import (
	"context"
	"time"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// WebsiteUpdate carries the mutable website fields. Nil fields are left
// untouched. The owner reference is never updatable.
type WebsiteUpdate struct {
	Title       *string
	Description *string
	Template    *domain.Template
	Content     *domain.ContentDocument
	Published   *bool
	PublishedAt *time.Time
}

// ListWebsitesFilter scopes website listings. An empty OwnerID means no
// owner filter (admin view).
type ListWebsitesFilter struct {
	OwnerID       string
	PublishedOnly bool
}

// WebsiteRepository defines persistence operations for websites.
type WebsiteRepository interface {
	Create(ctx context.Context, w *domain.Website) (*domain.Website, error)
	FindByID(ctx context.Context, id string) (*domain.Website, error)
	List(ctx context.Context, filter ListWebsitesFilter) ([]*domain.Website, error)
	Update(ctx context.Context, id string, update WebsiteUpdate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context, filter ListWebsitesFilter) (int64, error)
}
