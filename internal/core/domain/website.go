package domain

import (
	"errors"
	"time"
)

// Template identifies the layout a website is rendered with.
type Template string

const (
	TemplateBusiness   Template = "business"
	TemplatePortfolio  Template = "portfolio"
	TemplateRestaurant Template = "restaurant"
	TemplateBlog       Template = "blog"
	TemplateEcommerce  Template = "ecommerce"
)

var ErrWebsiteNotFound = errors.New("website not found")
var ErrForbidden = errors.New("access forbidden")
var ErrWebsiteNotPublished = errors.New("website not published")

// Website is the core aggregate: a generated marketing site owned by exactly
// one user. OwnerID is immutable after creation; only the owner or an admin
// may mutate or delete the website; only published websites are publicly
// visible through the preview endpoint.
type Website struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description,omitempty"`
	BusinessType string          `json:"business_type"`
	Industry     string          `json:"industry"`
	Template     Template        `json:"template"`
	Content      ContentDocument `json:"content"`
	OwnerID      string          `json:"owner_id"`
	Published    bool            `json:"published"`
	AIGenerated  bool            `json:"ai_generated"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	PublishedAt  *time.Time      `json:"published_at,omitempty"`
}

// ValidTemplate reports whether t is a known template identifier.
func ValidTemplate(t Template) bool {
	switch t {
	case TemplateBusiness, TemplatePortfolio, TemplateRestaurant, TemplateBlog, TemplateEcommerce:
		return true
	}
	return false
}

// OwnedBy reports whether the given user id owns this website. Plain string
// equality, as owner references are opaque document ids.
func (w *Website) OwnedBy(userID string) bool {
	return w.OwnerID == userID
}
