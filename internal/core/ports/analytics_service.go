package ports

import (
	"context"

	"github.com/sitesmith/website-builder/internal/core/domain"
)

// ViewService processes preview page-view events dequeued by the dispatcher.
type ViewService interface {
	Process(ctx context.Context, view domain.PageView) error
}
