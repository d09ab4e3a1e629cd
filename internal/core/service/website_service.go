package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const analyticsWindowDays = 30

// WebsiteService implements the website use-cases on top of the generation
// pipeline and the document store. Permission checks happen upstream in the
// middleware; this layer adds the owner-or-admin rules.
type WebsiteService struct {
	websites  ports.WebsiteRepository
	analytics ports.AnalyticsRepository
	generator ports.ContentGenerator
	logger    zerolog.Logger
}

func NewWebsiteService(
	websites ports.WebsiteRepository,
	analytics ports.AnalyticsRepository,
	generator ports.ContentGenerator,
	logger zerolog.Logger,
) *WebsiteService {
	return &WebsiteService{
		websites:  websites,
		analytics: analytics,
		generator: generator,
		logger:    logger,
	}
}

// Generate runs the content pipeline for the given attributes and persists a
// new unpublished website owned by the actor. Nothing is persisted until the
// pipeline has produced a complete document.
func (s *WebsiteService) Generate(ctx context.Context, actor ports.Actor, input ports.GenerateWebsiteInput) (*domain.Website, error) {
	businessType := strings.TrimSpace(input.BusinessType)
	industry := strings.TrimSpace(input.Industry)
	if len(businessType) < 2 || len(industry) < 2 {
		return nil, domain.ErrValidation
	}

	template := input.Template
	if template == "" {
		template = domain.TemplateBusiness
	}
	if !domain.ValidTemplate(template) {
		return nil, domain.ErrValidation
	}

	doc, source := s.generator.Generate(ctx, ports.GenerateInput{
		BusinessType: businessType,
		Industry:     industry,
		BusinessName: strings.TrimSpace(input.CompanyName),
	})

	title := strings.TrimSpace(input.CompanyName)
	if title == "" {
		title = doc.Hero.Title
	}

	now := time.Now().UTC()
	website := &domain.Website{
		Title:        title,
		BusinessType: businessType,
		Industry:     industry,
		Template:     template,
		Content:      *doc,
		OwnerID:      actor.User.ID,
		Published:    false,
		AIGenerated:  source == ports.SourceProvider,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.websites.Create(ctx, website)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", actor.User.ID).Msg("failed to persist website")
		return nil, err
	}

	s.logger.Info().
		Str("website_id", created.ID).
		Str("owner_id", actor.User.ID).
		Str("source", string(source)).
		Msg("website generated")
	return created, nil
}

// Regenerate re-runs the pipeline with the website's stored attributes and
// replaces only the content fields and updated_at. Identity, ownership and
// the published flag are untouched.
func (s *WebsiteService) Regenerate(ctx context.Context, actor ports.Actor, websiteID string) (*domain.Website, error) {
	website, err := s.ownedWebsite(ctx, actor, websiteID)
	if err != nil {
		return nil, err
	}

	doc, source := s.generator.Generate(ctx, ports.GenerateInput{
		BusinessType: website.BusinessType,
		Industry:     website.Industry,
		BusinessName: website.Title,
	})

	if err := s.websites.Update(ctx, websiteID, ports.WebsiteUpdate{Content: doc}); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("website_id", websiteID).
		Str("source", string(source)).
		Msg("website content regenerated")
	return s.websites.FindByID(ctx, websiteID)
}

func (s *WebsiteService) Get(ctx context.Context, actor ports.Actor, websiteID string) (*domain.Website, error) {
	return s.ownedWebsite(ctx, actor, websiteID)
}

// List returns every website for admins, the actor's own otherwise.
func (s *WebsiteService) List(ctx context.Context, actor ports.Actor) ([]*domain.Website, error) {
	filter := ports.ListWebsitesFilter{}
	if !actor.IsAdmin() {
		filter.OwnerID = actor.User.ID
	}
	return s.websites.List(ctx, filter)
}

// Update applies a typed partial update. The owner reference is immutable;
// flipping Published here follows the same rules as Publish.
func (s *WebsiteService) Update(ctx context.Context, actor ports.Actor, websiteID string, input ports.UpdateWebsiteInput) (*domain.Website, error) {
	website, err := s.ownedWebsite(ctx, actor, websiteID)
	if err != nil {
		return nil, err
	}
	if input.Template != nil && !domain.ValidTemplate(*input.Template) {
		return nil, domain.ErrValidation
	}

	update := ports.WebsiteUpdate{
		Title:       input.Title,
		Description: input.Description,
		Template:    input.Template,
		Published:   input.Published,
	}

	if input.Hero != nil || input.About != nil || input.Services != nil || input.Contact != nil || input.Meta != nil {
		content := website.Content
		if input.Hero != nil {
			content.Hero = *input.Hero
		}
		if input.About != nil {
			content.About = *input.About
		}
		if input.Services != nil {
			content.Services = *input.Services
		}
		if input.Contact != nil {
			content.Contact = *input.Contact
		}
		if input.Meta != nil {
			content.Meta = *input.Meta
		}
		update.Content = &content
	}

	if input.Published != nil && *input.Published && website.PublishedAt == nil {
		now := time.Now().UTC()
		update.PublishedAt = &now
	}

	if err := s.websites.Update(ctx, websiteID, update); err != nil {
		return nil, err
	}
	return s.websites.FindByID(ctx, websiteID)
}

func (s *WebsiteService) Delete(ctx context.Context, actor ports.Actor, websiteID string) error {
	if _, err := s.ownedWebsite(ctx, actor, websiteID); err != nil {
		return err
	}
	return s.websites.Delete(ctx, websiteID)
}

// Publish marks the website published, stamping published_at on the first
// transition only.
func (s *WebsiteService) Publish(ctx context.Context, actor ports.Actor, websiteID string) (*domain.Website, error) {
	website, err := s.ownedWebsite(ctx, actor, websiteID)
	if err != nil {
		return nil, err
	}

	published := true
	update := ports.WebsiteUpdate{Published: &published}
	if website.PublishedAt == nil {
		now := time.Now().UTC()
		update.PublishedAt = &now
	}

	if err := s.websites.Update(ctx, websiteID, update); err != nil {
		return nil, err
	}
	return s.websites.FindByID(ctx, websiteID)
}

// Clone copies a website as a fresh unpublished draft owned by the actor.
func (s *WebsiteService) Clone(ctx context.Context, actor ports.Actor, websiteID string) (*domain.Website, error) {
	original, err := s.ownedWebsite(ctx, actor, websiteID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	clone := &domain.Website{
		Title:        original.Title + " (Copy)",
		Description:  original.Description,
		BusinessType: original.BusinessType,
		Industry:     original.Industry,
		Template:     original.Template,
		Content:      original.Content,
		OwnerID:      actor.User.ID,
		Published:    false,
		AIGenerated:  original.AIGenerated,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.websites.Create(ctx, clone)
}

// Preview resolves a website for anonymous rendering. Unpublished websites
// are not visible through this path, regardless of caller.
func (s *WebsiteService) Preview(ctx context.Context, websiteID string) (*domain.Website, error) {
	website, err := s.websites.FindByID(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if !website.Published {
		return nil, domain.ErrWebsiteNotPublished
	}
	return website, nil
}

// Analytics returns the last 30 day buckets plus totals for a website.
func (s *WebsiteService) Analytics(ctx context.Context, actor ports.Actor, websiteID string) (*ports.AnalyticsSummary, error) {
	if _, err := s.ownedWebsite(ctx, actor, websiteID); err != nil {
		return nil, err
	}

	daily, err := s.analytics.LastDays(ctx, websiteID, analyticsWindowDays)
	if err != nil {
		return nil, err
	}

	summary := &ports.AnalyticsSummary{
		WebsiteID: websiteID,
		Daily:     daily,
		Since:     time.Now().UTC().AddDate(0, 0, -analyticsWindowDays),
	}
	for _, d := range daily {
		summary.TotalViews += d.PageViews
		summary.TotalVisitors += d.UniqueVisitors
	}
	return summary, nil
}

// ownedWebsite loads a website and enforces the owner-or-admin rule by plain
// id equality against the actor.
func (s *WebsiteService) ownedWebsite(ctx context.Context, actor ports.Actor, websiteID string) (*domain.Website, error) {
	website, err := s.websites.FindByID(ctx, websiteID)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() || website.OwnedBy(actor.User.ID) {
		return website, nil
	}
	return nil, domain.ErrForbidden
}
