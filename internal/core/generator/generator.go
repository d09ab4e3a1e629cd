// Package generator implements the content generation pipeline: prompt
// construction, the bounded external provider call, best-effort parsing and
// repair of the response, and the deterministic offline fallback. The
// pipeline never fails: every call yields a complete, shape-valid document.
package generator

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const defaultProviderTimeout = 20 * time.Second

// Generator orchestrates the pipeline around a ContentProvider.
type Generator struct {
	provider ports.ContentProvider
	timeout  time.Duration
	logger   zerolog.Logger
}

// New builds a Generator. If timeout <= 0 a default is applied. A nil
// provider is allowed and forces the fallback path (offline mode).
func New(provider ports.ContentProvider, timeout time.Duration, logger zerolog.Logger) *Generator {
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}
	return &Generator{provider: provider, timeout: timeout, logger: logger}
}

// Generate produces a content document for the given business attributes.
// Provider failures of any kind are absorbed: unreachable provider, empty
// response, or output that cannot be parsed after best-effort extraction all
// route to the deterministic fallback, never to an error.
func (g *Generator) Generate(ctx context.Context, input ports.GenerateInput) (*domain.ContentDocument, ports.ContentSource) {
	if g.provider == nil {
		return fallbackDocument(input), ports.SourceFallback
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := g.provider.Complete(callCtx, buildPrompt(input))
	if err != nil {
		g.logger.Warn().Err(err).
			Str("business_type", input.BusinessType).
			Str("industry", input.Industry).
			Msg("content provider failed, using fallback")
		return fallbackDocument(input), ports.SourceFallback
	}
	if strings.TrimSpace(raw) == "" {
		g.logger.Warn().
			Str("industry", input.Industry).
			Msg("content provider returned empty response, using fallback")
		return fallbackDocument(input), ports.SourceFallback
	}

	doc, err := parseDocument(raw)
	if err != nil {
		g.logger.Warn().Err(err).
			Str("industry", input.Industry).
			Msg("content provider response unparseable, using fallback")
		return fallbackDocument(input), ports.SourceFallback
	}

	sanitize(doc, input)
	return doc, ports.SourceProvider
}
