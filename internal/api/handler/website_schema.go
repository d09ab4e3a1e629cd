package handler

import (
	"time"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type generateWebsiteRequest struct {
	BusinessType string `json:"business_type" validate:"required,min=2"`
	Industry     string `json:"industry"      validate:"required,min=2"`
	CompanyName  string `json:"company_name"`
	Template     string `json:"template"      validate:"omitempty,oneof=business portfolio restaurant blog ecommerce"`
}

type heroRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	CTAText  string `json:"cta_text"`
}

type aboutRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type serviceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type contactRequest struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
	BusinessHours string `json:"business_hours"`
}

type metaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// updateWebsiteRequest is a partial update: absent fields leave the stored
// value untouched. Owner and creation fields are not updatable.
type updateWebsiteRequest struct {
	Title       *string           `json:"title,omitempty"`
	Description *string           `json:"description,omitempty"`
	Template    *string           `json:"template,omitempty" validate:"omitempty,oneof=business portfolio restaurant blog ecommerce"`
	Published   *bool             `json:"published,omitempty"`
	Hero        *heroRequest      `json:"hero,omitempty"`
	About       *aboutRequest     `json:"about,omitempty"`
	Services    *[]serviceRequest `json:"services,omitempty"`
	Contact     *contactRequest   `json:"contact,omitempty"`
	Meta        *metaRequest      `json:"meta,omitempty"`
}

// --- Response types ---

type listWebsitesResponse struct {
	Data  []*domain.Website `json:"data"`
	Total int               `json:"total"`
}

type dailyAnalyticsResponse struct {
	Date           string `json:"date"`
	PageViews      int64  `json:"page_views"`
	UniqueVisitors int64  `json:"unique_visitors"`
}

type analyticsResponse struct {
	WebsiteID     string                   `json:"website_id"`
	TotalViews    int64                    `json:"total_views"`
	TotalVisitors int64                    `json:"total_visitors"`
	Since         time.Time                `json:"since"`
	Daily         []dailyAnalyticsResponse `json:"daily"`
}
