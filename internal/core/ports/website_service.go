package ports

import (
	"context"
	"time"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// Actor is the authenticated identity performing an operation, as resolved
// by the auth middleware. Role may be nil for role-less users.
type Actor struct {
	User *domain.User
	Role *domain.Role
}

// IsAdmin reports whether the actor holds the reserved admin role.
func (a Actor) IsAdmin() bool {
	return a.Role != nil && a.Role.Name == domain.RoleAdmin
}

// GenerateWebsiteInput carries the business attributes for a new website.
type GenerateWebsiteInput struct {
	BusinessType string
	Industry     string
	CompanyName  string
	Template     domain.Template
}

// UpdateWebsiteInput is the typed partial-update request. Nil fields are
// left untouched; there is deliberately no owner field.
type UpdateWebsiteInput struct {
	Title       *string
	Description *string
	Template    *domain.Template
	Published   *bool
	Hero        *domain.Hero
	About       *domain.About
	Services    *[]domain.Service
	Contact     *domain.Contact
	Meta        *domain.Meta
}

// AnalyticsSummary aggregates a website's recent traffic.
type AnalyticsSummary struct {
	WebsiteID     string
	TotalViews    int64
	TotalVisitors int64
	Daily         []*domain.DailyAnalytics
	Since         time.Time
}

// WebsiteService defines the website use-cases. Every operation receives the
// acting identity and applies owner-or-admin rules on top of the permission
// checks already enforced by the middleware.
type WebsiteService interface {
	Generate(ctx context.Context, actor Actor, input GenerateWebsiteInput) (*domain.Website, error)
	Regenerate(ctx context.Context, actor Actor, websiteID string) (*domain.Website, error)
	Get(ctx context.Context, actor Actor, websiteID string) (*domain.Website, error)
	List(ctx context.Context, actor Actor) ([]*domain.Website, error)
	Update(ctx context.Context, actor Actor, websiteID string, input UpdateWebsiteInput) (*domain.Website, error)
	Delete(ctx context.Context, actor Actor, websiteID string) error
	Publish(ctx context.Context, actor Actor, websiteID string) (*domain.Website, error)
	Clone(ctx context.Context, actor Actor, websiteID string) (*domain.Website, error)
	// Preview returns a published website for anonymous rendering.
	// Unpublished websites are not visible through this path.
	Preview(ctx context.Context, websiteID string) (*domain.Website, error)
	Analytics(ctx context.Context, actor Actor, websiteID string) (*AnalyticsSummary, error)
}
