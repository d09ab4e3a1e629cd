package domain

import "strings"

// ServiceCount is the exact number of service entries every content
// document carries, padded or truncated during repair.
const ServiceCount = 3

// Headline-class length caps. Repair truncates to the cap and appends "...".
const (
	MaxHeroTitleLen       = 80
	MaxHeroSubtitleLen    = 150
	MaxMetaTitleLen       = 60
	MaxMetaDescriptionLen = 160
)

// DefaultIcon replaces any icon outside the allowed set.
const DefaultIcon = "star"

// AllowedIcons is the fixed icon vocabulary for service entries.
var AllowedIcons = []string{
	"star", "heart", "check", "briefcase", "target",
	"headphones", "shield", "globe", "cog", "users",
}

// Hero is the top banner block of a website.
type Hero struct {
	Title    string `json:"title" bson:"title"`
	Subtitle string `json:"subtitle" bson:"subtitle"`
	CTAText  string `json:"cta_text" bson:"cta_text"`
}

// About is the company description block.
type About struct {
	Title string `json:"title" bson:"title"`
	Body  string `json:"body" bson:"body"`
}

// Service is one entry of the three-service grid.
type Service struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Icon        string `json:"icon" bson:"icon"`
}

// Contact is the contact block, including the structured business details.
type Contact struct {
	Title         string `json:"title" bson:"title"`
	Body          string `json:"body" bson:"body"`
	Phone         string `json:"phone" bson:"phone"`
	Email         string `json:"email" bson:"email"`
	Address       string `json:"address" bson:"address"`
	BusinessHours string `json:"business_hours" bson:"business_hours"`
}

// Meta carries the SEO tags rendered into the page head.
type Meta struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Keywords    string `json:"keywords" bson:"keywords"`
}

// ContentDocument is the structured website content produced by the
// generation pipeline. Fallback and provider output share this shape, so
// nothing downstream distinguishes the two.
type ContentDocument struct {
	Hero     Hero      `json:"hero" bson:"hero"`
	About    About     `json:"about" bson:"about"`
	Services []Service `json:"services" bson:"services"`
	Contact  Contact   `json:"contact" bson:"contact"`
	Meta     Meta      `json:"meta" bson:"meta"`
}

// IconAllowed reports whether icon belongs to the allowed set.
func IconAllowed(icon string) bool {
	for _, a := range AllowedIcons {
		if a == icon {
			return true
		}
	}
	return false
}

// Truncate caps s at max runes, appending "..." when it was longer.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-3]), " ") + "..."
}
