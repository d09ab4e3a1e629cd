package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sitesmith/website-builder/internal/api/metrics"
	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// WebsiteHandler handles HTTP requests for website operations.
type WebsiteHandler struct {
	service ports.WebsiteService
}

func NewWebsiteHandler(service ports.WebsiteService) *WebsiteHandler {
	return &WebsiteHandler{service: service}
}

// Generate handles POST /api/generate-website.
//
// @Summary      Generate a new website
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      generateWebsiteRequest  true  "Business attributes"
// @Success      201   {object}  domain.Website
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/generate-website [post]
func (h *WebsiteHandler) Generate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req generateWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start := time.Now()
	website, err := h.service.Generate(c.Request().Context(), actor, ports.GenerateWebsiteInput{
		BusinessType: req.BusinessType,
		Industry:     req.Industry,
		CompanyName:  req.CompanyName,
		Template:     domain.Template(req.Template),
	})
	if err != nil {
		return err
	}

	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	metrics.GenerationsTotal.WithLabelValues(generationSource(website), string(website.Template)).Inc()

	return c.JSON(http.StatusCreated, website)
}

// Regenerate handles POST /api/websites/:id/regenerate-content.
//
// @Summary      Regenerate a website's content
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website ID"
// @Success      200  {object}  domain.Website
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id}/regenerate-content [post]
func (h *WebsiteHandler) Regenerate(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	start := time.Now()
	website, err := h.service.Regenerate(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	metrics.GenerationsTotal.WithLabelValues(generationSource(website), string(website.Template)).Inc()

	return c.JSON(http.StatusOK, website)
}

// Get handles GET /api/websites/:id.
//
// @Summary      Get a website
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website ID"
// @Success      200  {object}  domain.Website
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id} [get]
func (h *WebsiteHandler) Get(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	website, err := h.service.Get(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, website)
}

// List handles GET /api/websites. Admins see every website; everyone else
// sees only their own.
//
// @Summary      List websites
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listWebsitesResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/websites [get]
func (h *WebsiteHandler) List(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	websites, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listWebsitesResponse{Data: websites, Total: len(websites)})
}

// Update handles PUT /api/websites/:id.
//
// @Summary      Update a website
// @Tags         websites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Website ID"
// @Param        body  body      updateWebsiteRequest  true  "Fields to update"
// @Success      200   {object}  domain.Website
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/websites/{id} [put]
func (h *WebsiteHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateWebsiteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	website, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, website)
}

// Delete handles DELETE /api/websites/:id.
//
// @Summary      Delete a website
// @Tags         websites
// @Security     BearerAuth
// @Param        id  path  string  true  "Website ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id} [delete]
func (h *WebsiteHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Publish handles POST /api/websites/:id/publish.
//
// @Summary      Publish a website
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website ID"
// @Success      200  {object}  domain.Website
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id}/publish [post]
func (h *WebsiteHandler) Publish(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	website, err := h.service.Publish(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.WebsitesPublishedTotal.Inc()
	return c.JSON(http.StatusOK, website)
}

// Clone handles POST /api/websites/:id/clone.
//
// @Summary      Clone a website
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website ID"
// @Success      201  {object}  domain.Website
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id}/clone [post]
func (h *WebsiteHandler) Clone(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	website, err := h.service.Clone(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, website)
}

// Analytics handles GET /api/websites/:id/analytics.
//
// @Summary      Website traffic analytics
// @Tags         websites
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Website ID"
// @Success      200  {object}  analyticsResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/websites/{id}/analytics [get]
func (h *WebsiteHandler) Analytics(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	summary, err := h.service.Analytics(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAnalyticsResponse(summary))
}

// generationSource labels a generation by how its content was produced.
func generationSource(w *domain.Website) string {
	if w.AIGenerated {
		return string(ports.SourceProvider)
	}
	return string(ports.SourceFallback)
}
