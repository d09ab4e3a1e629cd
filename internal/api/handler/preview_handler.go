package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/api/metrics"
	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

const (
	visitorCookieName = "visitor_id"
	visitorCookieTTL  = 365 * 24 * time.Hour
)

// ViewEnqueuer hands page views to the asynchronous recording pipeline.
type ViewEnqueuer interface {
	Enqueue(view domain.PageView)
}

// PreviewHandler serves published websites anonymously and feeds the
// analytics pipeline.
type PreviewHandler struct {
	service  ports.WebsiteService
	enqueuer ViewEnqueuer
}

func NewPreviewHandler(service ports.WebsiteService, enqueuer ViewEnqueuer) *PreviewHandler {
	return &PreviewHandler{service: service, enqueuer: enqueuer}
}

// Preview handles GET /api/preview/:id. The route is public; only published
// websites are served. Each hit is counted asynchronously, with a persistent
// cookie identifying returning visitors.
//
// @Summary      Preview a published website
// @Tags         preview
// @Produce      json
// @Param        id   path      string  true  "Website ID"
// @Success      200  {object}  domain.Website
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/preview/{id} [get]
func (h *PreviewHandler) Preview(c echo.Context) error {
	website, err := h.service.Preview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	h.enqueuer.Enqueue(domain.PageView{
		WebsiteID: website.ID,
		VisitorID: h.visitorID(c),
		At:        time.Now().UTC(),
	})
	metrics.PageViewsEnqueued.Inc()

	return c.JSON(http.StatusOK, website)
}

// visitorID returns the visitor cookie value, minting and setting a new one
// on first visit.
func (h *PreviewHandler) visitorID(c echo.Context) string {
	if cookie, err := c.Cookie(visitorCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	id := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     visitorCookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(visitorCookieTTL),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
