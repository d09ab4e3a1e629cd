package handler

import (
	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// --- Request → Service input ---

func toUpdateInput(req updateWebsiteRequest) ports.UpdateWebsiteInput {
	input := ports.UpdateWebsiteInput{
		Title:       req.Title,
		Description: req.Description,
		Published:   req.Published,
	}
	if req.Template != nil {
		t := domain.Template(*req.Template)
		input.Template = &t
	}
	if req.Hero != nil {
		input.Hero = &domain.Hero{
			Title:    req.Hero.Title,
			Subtitle: req.Hero.Subtitle,
			CTAText:  req.Hero.CTAText,
		}
	}
	if req.About != nil {
		input.About = &domain.About{
			Title: req.About.Title,
			Body:  req.About.Body,
		}
	}
	if req.Services != nil {
		services := make([]domain.Service, len(*req.Services))
		for i, s := range *req.Services {
			services[i] = domain.Service{
				Title:       s.Title,
				Description: s.Description,
				Icon:        s.Icon,
			}
		}
		input.Services = &services
	}
	if req.Contact != nil {
		input.Contact = &domain.Contact{
			Title:         req.Contact.Title,
			Body:          req.Contact.Body,
			Phone:         req.Contact.Phone,
			Email:         req.Contact.Email,
			Address:       req.Contact.Address,
			BusinessHours: req.Contact.BusinessHours,
		}
	}
	if req.Meta != nil {
		input.Meta = &domain.Meta{
			Title:       req.Meta.Title,
			Description: req.Meta.Description,
			Keywords:    req.Meta.Keywords,
		}
	}
	return input
}

// --- Service result → HTTP response ---

func toAnalyticsResponse(s *ports.AnalyticsSummary) analyticsResponse {
	daily := make([]dailyAnalyticsResponse, len(s.Daily))
	for i, d := range s.Daily {
		daily[i] = dailyAnalyticsResponse{
			Date:           d.Date.UTC().Format("2006-01-02"),
			PageViews:      d.PageViews,
			UniqueVisitors: d.UniqueVisitors,
		}
	}
	return analyticsResponse{
		WebsiteID:     s.WebsiteID,
		TotalViews:    s.TotalViews,
		TotalVisitors: s.TotalVisitors,
		Since:         s.Since.UTC(),
		Daily:         daily,
	}
}
