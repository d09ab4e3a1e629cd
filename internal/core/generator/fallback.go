package generator

import (
	"fmt"
	"strings"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const (
	defaultPhone   = "(555) 123-4567"
	defaultAddress = "123 Business Street, City, State 12345"
	defaultHours   = "Monday - Friday: 9:00 AM - 5:00 PM"
)

// industryKeywords feeds the meta keyword tag. Industries are matched
// case-insensitively; unmatched industries fall through to genericKeywords.
var industryKeywords = map[string][]string{
	"technology":   {"innovation", "digital", "solutions", "software", "tech"},
	"healthcare":   {"medical", "health", "care", "wellness", "treatment"},
	"education":    {"learning", "education", "training", "knowledge", "academic"},
	"finance":      {"financial", "investment", "banking", "money", "consulting"},
	"food":         {"culinary", "dining", "restaurant", "catering", "cuisine"},
	"retail":       {"shopping", "products", "merchandise", "sales", "store"},
	"real estate":  {"property", "homes", "investment", "buying", "selling"},
	"automotive":   {"vehicles", "cars", "automotive", "repair", "maintenance"},
	"construction": {"building", "construction", "renovation", "contracting", "development"},
	"legal":        {"legal", "law", "attorney", "consultation", "representation"},
}

var genericKeywords = []string{"professional", "quality", "service", "business", "excellence"}

// industryServices maps an industry to its canned three-service set.
var industryServices = map[string][]domain.Service{
	"technology": {
		{Title: "Software Development", Description: "Custom software solutions for your business needs.", Icon: "cog"},
		{Title: "IT Consulting", Description: "Expert technology consulting and strategic planning.", Icon: "briefcase"},
		{Title: "Technical Support", Description: "Round-the-clock technical support and maintenance services.", Icon: "headphones"},
	},
	"healthcare": {
		{Title: "Patient Care", Description: "Comprehensive healthcare services with personalized attention.", Icon: "heart"},
		{Title: "Medical Consultation", Description: "Expert medical consultation and diagnosis.", Icon: "shield"},
		{Title: "Health Monitoring", Description: "Continuous health monitoring and preventive care.", Icon: "check"},
	},
	"education": {
		{Title: "Online Learning", Description: "Interactive online courses and educational programs.", Icon: "globe"},
		{Title: "Tutoring Services", Description: "Personalized tutoring and academic support.", Icon: "users"},
		{Title: "Certification Programs", Description: "Professional certification and skill development.", Icon: "target"},
	},
	"finance": {
		{Title: "Financial Planning", Description: "Tailored financial plans built around your goals.", Icon: "target"},
		{Title: "Investment Advisory", Description: "Expert guidance on building and managing your portfolio.", Icon: "briefcase"},
		{Title: "Accounting Services", Description: "Accurate bookkeeping and reporting you can rely on.", Icon: "check"},
	},
	"food": {
		{Title: "Catering Services", Description: "Memorable catering for events of every size.", Icon: "users"},
		{Title: "Fresh Daily Menu", Description: "Seasonal dishes prepared fresh every day.", Icon: "star"},
		{Title: "Private Events", Description: "Custom menus and dedicated service for private occasions.", Icon: "heart"},
	},
	"retail": {
		{Title: "Curated Products", Description: "A hand-picked selection of quality merchandise.", Icon: "star"},
		{Title: "Personal Shopping", Description: "One-on-one assistance finding exactly what you need.", Icon: "users"},
		{Title: "Fast Delivery", Description: "Quick, reliable delivery straight to your door.", Icon: "globe"},
	},
	"real estate": {
		{Title: "Property Sales", Description: "Expert guidance through buying and selling property.", Icon: "briefcase"},
		{Title: "Property Management", Description: "Full-service management for owners and investors.", Icon: "shield"},
		{Title: "Market Analysis", Description: "Data-driven valuations and market insight.", Icon: "target"},
	},
	"automotive": {
		{Title: "Vehicle Repair", Description: "Certified technicians for every make and model.", Icon: "cog"},
		{Title: "Routine Maintenance", Description: "Scheduled servicing that keeps you on the road.", Icon: "check"},
		{Title: "Diagnostics", Description: "Modern diagnostic equipment for fast, accurate answers.", Icon: "shield"},
	},
	"construction": {
		{Title: "General Contracting", Description: "End-to-end management of residential and commercial builds.", Icon: "briefcase"},
		{Title: "Renovations", Description: "Quality renovations that transform your space.", Icon: "cog"},
		{Title: "Project Planning", Description: "Detailed planning and budgeting before ground is broken.", Icon: "target"},
	},
	"legal": {
		{Title: "Legal Consultation", Description: "Clear, practical advice on your legal questions.", Icon: "briefcase"},
		{Title: "Contract Review", Description: "Thorough review and drafting of agreements.", Icon: "check"},
		{Title: "Representation", Description: "Committed representation in negotiations and disputes.", Icon: "shield"},
	},
}

// fallbackDocument builds the deterministic offline document from the input
// attributes and the fixed industry tables. Identical inputs always produce
// identical output, and the shape matches a successful generation exactly.
func fallbackDocument(input ports.GenerateInput) *domain.ContentDocument {
	industry := strings.ToLower(strings.TrimSpace(input.Industry))
	businessType := strings.ToLower(strings.TrimSpace(input.BusinessType))
	display := displayName(input)

	keywords, ok := industryKeywords[industry]
	if !ok {
		keywords = genericKeywords
	}

	services, ok := industryServices[industry]
	if !ok {
		services = []domain.Service{
			{
				Title:       titleCase(industry) + " Consulting",
				Description: fmt.Sprintf("Expert consulting services in %s to help your business grow.", industry),
				Icon:        "briefcase",
			},
			{
				Title:       "Strategy Development",
				Description: "Comprehensive strategy development tailored to your business goals.",
				Icon:        "target",
			},
			{
				Title:       "Support Services",
				Description: "Ongoing support and maintenance to ensure your success.",
				Icon:        "headphones",
			},
		}
	}

	doc := &domain.ContentDocument{
		Hero: domain.Hero{
			Title:    "Welcome to " + display,
			Subtitle: fmt.Sprintf("Professional %s services in the %s industry", businessType, industry),
			CTAText:  "Get Started",
		},
		About: domain.About{
			Title: "About Us",
			Body: fmt.Sprintf(
				"We are a leading %s company specializing in %s solutions. With years of experience and a commitment to excellence, we provide our clients with top-quality services that meet their unique needs.\n\n"+
					"Our team of professionals is dedicated to delivering outstanding results and ensuring customer satisfaction. We pride ourselves on our attention to detail, innovative approach, and reliable service delivery.",
				businessType, industry),
		},
		Services: append([]domain.Service(nil), services...),
		Contact: domain.Contact{
			Title:         "Get In Touch",
			Body:          "Ready to take your business to the next level? Contact us today to discuss how we can help you achieve your goals.",
			Phone:         defaultPhone,
			Email:         contactEmail(input.BusinessName),
			Address:       defaultAddress,
			BusinessHours: defaultHours,
		},
		Meta: domain.Meta{
			Title:       fmt.Sprintf("%s - Professional %s Services", display, input.Industry),
			Description: fmt.Sprintf("Professional %s services in %s. Quality solutions for your business needs.", businessType, industry),
			Keywords:    fmt.Sprintf("%s, %s, %s", businessType, industry, strings.Join(keywords, ", ")),
		},
	}

	sanitize(doc, input)
	return doc
}

// titleCase upper-cases the first letter of each word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// contactEmail derives a contact address from the business name, or uses a
// generic placeholder when none was given.
func contactEmail(businessName string) string {
	if businessName == "" {
		return "info@business.com"
	}
	slug := strings.ToLower(businessName)
	slug = strings.ReplaceAll(slug, " ", "")
	slug = strings.ReplaceAll(slug, "-", "")
	return "info@" + slug + ".com"
}
