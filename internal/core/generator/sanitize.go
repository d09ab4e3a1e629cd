package generator

import (
	"fmt"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// sanitize repairs a parsed document in place so it satisfies every shape
// invariant: required fields non-empty, exactly three services, icons within
// the allowed set, headline fields within their length caps.
func sanitize(doc *domain.ContentDocument, input ports.GenerateInput) {
	if doc.Hero.Title == "" {
		doc.Hero.Title = "Welcome to " + displayName(input)
	}
	if doc.Hero.Subtitle == "" {
		doc.Hero.Subtitle = "Professional services tailored to your needs"
	}
	if doc.Hero.CTAText == "" {
		doc.Hero.CTAText = "Get Started"
	}
	if doc.About.Title == "" {
		doc.About.Title = "About Us"
	}
	if doc.About.Body == "" {
		doc.About.Body = "We provide excellent services to our clients."
	}
	if doc.Contact.Title == "" {
		doc.Contact.Title = "Get In Touch"
	}
	if doc.Contact.Body == "" {
		doc.Contact.Body = "Ready to take your business to the next level? Contact us today."
	}
	if doc.Contact.Phone == "" {
		doc.Contact.Phone = defaultPhone
	}
	if doc.Contact.Email == "" {
		doc.Contact.Email = contactEmail(input.BusinessName)
	}
	if doc.Contact.Address == "" {
		doc.Contact.Address = defaultAddress
	}
	if doc.Contact.BusinessHours == "" {
		doc.Contact.BusinessHours = defaultHours
	}
	if doc.Meta.Title == "" {
		doc.Meta.Title = displayName(input) + " - Professional Services"
	}
	if doc.Meta.Description == "" {
		doc.Meta.Description = "Quality professional services for your business needs"
	}
	if doc.Meta.Keywords == "" {
		doc.Meta.Keywords = "business, professional, services, quality, reliable"
	}

	doc.Services = repairServices(doc.Services)

	doc.Hero.Title = domain.Truncate(doc.Hero.Title, domain.MaxHeroTitleLen)
	doc.Hero.Subtitle = domain.Truncate(doc.Hero.Subtitle, domain.MaxHeroSubtitleLen)
	doc.Meta.Title = domain.Truncate(doc.Meta.Title, domain.MaxMetaTitleLen)
	doc.Meta.Description = domain.Truncate(doc.Meta.Description, domain.MaxMetaDescriptionLen)
}

// repairServices forces exactly domain.ServiceCount entries: extra entries
// are dropped, short lists are padded with synthesized placeholders, and
// out-of-set icons are replaced with the default.
func repairServices(services []domain.Service) []domain.Service {
	if len(services) > domain.ServiceCount {
		services = services[:domain.ServiceCount]
	}

	repaired := make([]domain.Service, 0, domain.ServiceCount)
	for _, svc := range services {
		if svc.Title == "" {
			svc.Title = "Professional Service"
		}
		if svc.Description == "" {
			svc.Description = "Quality service description"
		}
		if !domain.IconAllowed(svc.Icon) {
			svc.Icon = domain.DefaultIcon
		}
		repaired = append(repaired, svc)
	}

	for len(repaired) < domain.ServiceCount {
		repaired = append(repaired, domain.Service{
			Title:       fmt.Sprintf("Service %d", len(repaired)+1),
			Description: "Professional service offering",
			Icon:        domain.DefaultIcon,
		})
	}
	return repaired
}

func displayName(input ports.GenerateInput) string {
	if input.BusinessName != "" {
		return input.BusinessName
	}
	return "Your Business"
}
