package generator

import (
	"fmt"
	"strings"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// buildPrompt renders the provider prompt: the three business attributes plus
// a strict output-shape instruction mirroring domain.ContentDocument.
func buildPrompt(input ports.GenerateInput) string {
	named := ""
	if input.BusinessName != "" {
		named = fmt.Sprintf(" called %q", input.BusinessName)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Create website content for a %s business%s in the %s industry.\n\n",
		input.BusinessType, named, input.Industry)
	b.WriteString("You must respond with ONLY a valid JSON object in the following exact format (no additional text, no markdown formatting, no code blocks):\n\n")
	b.WriteString(`{
  "hero": {
    "title": "Compelling main headline (max 10 words)",
    "subtitle": "Supporting tagline that explains the value proposition (max 25 words)",
    "cta_text": "Call to action button text"
  },
  "about": {
    "title": "About section title",
    "body": "About us content (2-3 paragraphs, professional tone)"
  },
  "services": [
    {"title": "Service 1 Title", "description": "Brief service description (2-3 sentences)", "icon": "star"},
    {"title": "Service 2 Title", "description": "Brief service description (2-3 sentences)", "icon": "heart"},
    {"title": "Service 3 Title", "description": "Brief service description (2-3 sentences)", "icon": "check"}
  ],
  "contact": {
    "title": "Contact section title",
    "body": "Contact section content",
    "phone": "(555) 123-4567",
    "email": "info@example.com",
    "address": "123 Business Street, City, State 12345",
    "business_hours": "Monday - Friday: 9:00 AM - 5:00 PM"
  },
  "meta": {
    "title": "SEO optimized page title (max 60 characters)",
    "description": "SEO meta description (max 160 characters)",
    "keywords": "5-8 relevant keywords separated by commas"
  }
}
`)
	fmt.Fprintf(&b, "\nRequirements:\n")
	fmt.Fprintf(&b, "- Make the content professional, engaging, and specific to the %s industry\n", input.Industry)
	fmt.Fprintf(&b, "- Use appropriate business terminology for %s\n", input.BusinessType)
	b.WriteString("- Ensure all text is original and compelling\n")
	b.WriteString("- Keep within the character limits specified\n")
	fmt.Fprintf(&b, "- Use only these icon names: %s\n", strings.Join(domain.AllowedIcons, ", "))
	b.WriteString("- Respond with ONLY the JSON object, no other text\n")
	return b.String()
}
