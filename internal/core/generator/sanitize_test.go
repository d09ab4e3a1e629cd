package generator

import (
	"strings"
	"testing"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

func sanitizeInput() ports.GenerateInput {
	return ports.GenerateInput{BusinessType: "bakery", Industry: "food", BusinessName: "Acme Breads"}
}

func TestSanitize_FillsEmptyFields(t *testing.T) {
	doc := &domain.ContentDocument{}
	sanitize(doc, sanitizeInput())

	if doc.Hero.Title != "Welcome to Acme Breads" {
		t.Fatalf("unexpected hero title: %q", doc.Hero.Title)
	}
	if doc.Hero.CTAText == "" || doc.About.Title == "" || doc.Contact.Phone == "" {
		t.Fatalf("empty fields must be filled: %+v", doc)
	}
	if doc.Contact.Email != "info@acmebreads.com" {
		t.Fatalf("unexpected contact email: %q", doc.Contact.Email)
	}
	if len(doc.Services) != domain.ServiceCount {
		t.Fatalf("expected %d services, got %d", domain.ServiceCount, len(doc.Services))
	}
}

func TestSanitize_TruncatesHeadlines(t *testing.T) {
	doc := &domain.ContentDocument{
		Hero: domain.Hero{Title: strings.Repeat("a", 200), Subtitle: strings.Repeat("b", 200)},
		Meta: domain.Meta{Title: strings.Repeat("c", 200), Description: strings.Repeat("d", 300)},
	}
	sanitize(doc, sanitizeInput())

	checks := []struct {
		name string
		got  string
		max  int
	}{
		{"hero title", doc.Hero.Title, domain.MaxHeroTitleLen},
		{"hero subtitle", doc.Hero.Subtitle, domain.MaxHeroSubtitleLen},
		{"meta title", doc.Meta.Title, domain.MaxMetaTitleLen},
		{"meta description", doc.Meta.Description, domain.MaxMetaDescriptionLen},
	}
	for _, c := range checks {
		if len([]rune(c.got)) > c.max {
			t.Fatalf("%s exceeds cap %d: %d runes", c.name, c.max, len([]rune(c.got)))
		}
		if !strings.HasSuffix(c.got, "...") {
			t.Fatalf("%s should end with ellipsis after truncation: %q", c.name, c.got)
		}
	}
}

func TestRepairServices_TruncatesExtra(t *testing.T) {
	in := []domain.Service{
		{Title: "A", Description: "a", Icon: "star"},
		{Title: "B", Description: "b", Icon: "heart"},
		{Title: "C", Description: "c", Icon: "check"},
		{Title: "D", Description: "d", Icon: "globe"},
		{Title: "E", Description: "e", Icon: "cog"},
	}
	out := repairServices(in)
	if len(out) != domain.ServiceCount {
		t.Fatalf("expected %d services, got %d", domain.ServiceCount, len(out))
	}
	if out[0].Title != "A" || out[2].Title != "C" {
		t.Fatalf("truncation must keep the first entries in order")
	}
}

func TestRepairServices_PadsShortLists(t *testing.T) {
	out := repairServices([]domain.Service{{Title: "Only One", Description: "x", Icon: "star"}})
	if len(out) != domain.ServiceCount {
		t.Fatalf("expected %d services, got %d", domain.ServiceCount, len(out))
	}
	if out[1].Title != "Service 2" || out[2].Title != "Service 3" {
		t.Fatalf("padded entries must be numbered: %q, %q", out[1].Title, out[2].Title)
	}
	for _, s := range out {
		if !domain.IconAllowed(s.Icon) {
			t.Fatalf("padded icon outside allowed set: %q", s.Icon)
		}
	}
}

func TestRepairServices_CoercesUnknownIcons(t *testing.T) {
	out := repairServices([]domain.Service{
		{Title: "A", Description: "a", Icon: "rocket"},
		{Title: "B", Description: "b", Icon: "heart"},
		{Title: "C", Description: "c", Icon: ""},
	})
	if out[0].Icon != domain.DefaultIcon {
		t.Fatalf("unknown icon must become default, got %q", out[0].Icon)
	}
	if out[1].Icon != "heart" {
		t.Fatalf("allowed icon must survive, got %q", out[1].Icon)
	}
	if out[2].Icon != domain.DefaultIcon {
		t.Fatalf("empty icon must become default, got %q", out[2].Icon)
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	doc, err := parseDocument(validResponse)
	if err != nil {
		t.Fatalf("parseDocument failed: %v", err)
	}

	sanitize(doc, sanitizeInput())
	first := *doc
	firstServices := append([]domain.Service(nil), doc.Services...)

	sanitize(doc, sanitizeInput())
	if doc.Hero != first.Hero || doc.About != first.About || doc.Contact != first.Contact || doc.Meta != first.Meta {
		t.Fatalf("second sanitize changed an already repaired document")
	}
	for i := range firstServices {
		if doc.Services[i] != firstServices[i] {
			t.Fatalf("second sanitize changed service %d", i)
		}
	}
}
