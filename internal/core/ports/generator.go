package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// ContentProvider is the external generative collaborator: one prompt in,
// free-form text out. It may fail or return unstructured text; callers must
// treat both as recoverable.
type ContentProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ContentSource records which path produced a document.
type ContentSource string

const (
	SourceProvider ContentSource = "provider"
	SourceFallback ContentSource = "fallback"
)

// GenerateInput carries the business attributes fed to the pipeline.
// BusinessType and Industry are validated non-empty by the caller before
// the pipeline is invoked.
type GenerateInput struct {
	BusinessType string
	Industry     string
	BusinessName string
}

// ContentGenerator produces a complete, shape-valid content document. It
// never returns an error for provider failures; the fallback path absorbs
// them and the returned source tells the two apart.
type ContentGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*domain.ContentDocument, ContentSource)
}
