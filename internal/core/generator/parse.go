package generator

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

var errNoJSON = errors.New("no JSON object found in response")

// parseDocument best-effort decodes provider output into a content document:
// surrounding code fences are stripped and the first balanced brace-delimited
// substring is extracted before decoding. Any failure is recoverable; the
// caller falls back.
func parseDocument(raw string) (*domain.ContentDocument, error) {
	body, ok := extractJSON(raw)
	if !ok {
		return nil, errNoJSON
	}

	var doc domain.ContentDocument
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// extractJSON locates the first balanced {...} substring, after removing
// markdown code fences the provider tends to wrap its answer in.
func extractJSON(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = stripFences(s)

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
