package generator

import (
	"strings"
	"testing"
)

const validResponse = `{
  "hero": {"title": "Fresh Bread Daily", "subtitle": "Artisan baking", "cta_text": "Order Now"},
  "about": {"title": "About Us", "body": "We bake."},
  "services": [
    {"title": "Custom Cakes", "description": "Cakes to order.", "icon": "star"},
    {"title": "Catering", "description": "Events of all sizes.", "icon": "users"},
    {"title": "Daily Menu", "description": "Fresh every day.", "icon": "heart"}
  ],
  "contact": {"title": "Visit", "body": "Come by.", "phone": "1", "email": "a@b.c", "address": "x", "business_hours": "y"},
  "meta": {"title": "Bakery", "description": "Fresh bread.", "keywords": "bread, cakes"}
}`

func TestParseDocument_PlainJSON(t *testing.T) {
	doc, err := parseDocument(validResponse)
	if err != nil {
		t.Fatalf("parseDocument returned error: %v", err)
	}
	if doc.Hero.Title != "Fresh Bread Daily" {
		t.Fatalf("unexpected hero title: %q", doc.Hero.Title)
	}
	if len(doc.Services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(doc.Services))
	}
}

func TestParseDocument_CodeFences(t *testing.T) {
	fenced := "```json\n" + validResponse + "\n```"
	doc, err := parseDocument(fenced)
	if err != nil {
		t.Fatalf("parseDocument returned error: %v", err)
	}
	if doc.Hero.Title != "Fresh Bread Daily" {
		t.Fatalf("unexpected hero title: %q", doc.Hero.Title)
	}
}

func TestParseDocument_SurroundingProse(t *testing.T) {
	chatty := "Sure! Here is the content you asked for:\n\n" + validResponse + "\n\nLet me know if you need changes."
	doc, err := parseDocument(chatty)
	if err != nil {
		t.Fatalf("parseDocument returned error: %v", err)
	}
	if doc.Meta.Title != "Bakery" {
		t.Fatalf("unexpected meta title: %q", doc.Meta.Title)
	}
}

func TestParseDocument_BracesInsideStrings(t *testing.T) {
	tricky := `{"hero": {"title": "We love {braces} and \"quotes\"", "subtitle": "s", "cta_text": "c"}}`
	doc, err := parseDocument(tricky)
	if err != nil {
		t.Fatalf("parseDocument returned error: %v", err)
	}
	if !strings.Contains(doc.Hero.Title, "{braces}") {
		t.Fatalf("brace content inside a string was mangled: %q", doc.Hero.Title)
	}
}

func TestParseDocument_NoJSON(t *testing.T) {
	if _, err := parseDocument("I cannot help with that request."); err == nil {
		t.Fatalf("expected error for response without JSON")
	}
}

func TestParseDocument_UnbalancedBraces(t *testing.T) {
	if _, err := parseDocument(`{"hero": {"title": "never closed"`); err == nil {
		t.Fatalf("expected error for unbalanced braces")
	}
}

func TestParseDocument_InvalidJSON(t *testing.T) {
	if _, err := parseDocument(`{broken: json,}`); err == nil {
		t.Fatalf("expected error for invalid JSON body")
	}
}

func TestStripFences_Bare(t *testing.T) {
	if got := stripFences("```\n{}\n```"); got != "{}" {
		t.Fatalf("unexpected strip result: %q", got)
	}
	if got := stripFences("no fences at all"); got != "no fences at all" {
		t.Fatalf("unfenced input must pass through, got %q", got)
	}
}
