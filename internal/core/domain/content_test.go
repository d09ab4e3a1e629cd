package domain

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-ten", 11, "exactly-ten"},
		{"this is definitely too long", 10, "this is..."},
		{"ends with  trailing gap", 13, "ends with..."},
	}
	for _, c := range cases {
		got := Truncate(c.in, c.max)
		if got != c.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", c.in, c.max, got, c.want)
		}
		if len([]rune(got)) > c.max {
			t.Fatalf("Truncate(%q, %d) exceeds cap: %q", c.in, c.max, got)
		}
	}
}

func TestTruncate_MultiByte(t *testing.T) {
	in := strings.Repeat("é", 100)
	got := Truncate(in, 10)
	if len([]rune(got)) > 10 {
		t.Fatalf("rune cap violated: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got)
	}
}

func TestIconAllowed(t *testing.T) {
	for _, icon := range AllowedIcons {
		if !IconAllowed(icon) {
			t.Fatalf("icon %q should be allowed", icon)
		}
	}
	for _, icon := range []string{"", "rocket", "Star", "STAR"} {
		if IconAllowed(icon) {
			t.Fatalf("icon %q should be rejected", icon)
		}
	}
}

func TestValidTemplate(t *testing.T) {
	for _, tpl := range []Template{TemplateBusiness, TemplatePortfolio, TemplateRestaurant, TemplateBlog, TemplateEcommerce} {
		if !ValidTemplate(tpl) {
			t.Fatalf("template %q should be valid", tpl)
		}
	}
	if ValidTemplate("newsletter") {
		t.Fatalf("unknown template should be invalid")
	}
}
