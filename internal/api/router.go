package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/sitesmith/website-builder/internal/api/handler"
	"github.com/sitesmith/website-builder/internal/api/middleware"
	"github.com/sitesmith/website-builder/internal/core/domain"
	"github.com/sitesmith/website-builder/internal/core/ports"
)

// Dependencies bundles everything the router needs. Services are constructed
// in main so the router stays a pure wiring function.
type Dependencies struct {
	Auth     ports.AuthService
	Websites ports.WebsiteService
	Users    ports.UserService
	Roles    ports.RoleService
	Stats    ports.StatsService
	Enqueuer handler.ViewEnqueuer

	Mongo *mongo.Database
	Redis *redis.Client
	Log   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("builder"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	websiteHandler := handler.NewWebsiteHandler(deps.Websites)
	previewHandler := handler.NewPreviewHandler(deps.Websites, deps.Enqueuer)
	adminHandler := handler.NewAdminHandler(deps.Users, deps.Roles, deps.Stats)
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	// --- Public routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/api/preview/:id", previewHandler.Preview)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	authMW := middleware.Auth(deps.Auth)

	apiGroup := e.Group("/api", authMW)
	apiGroup.GET("/me", authHandler.Me)

	apiGroup.POST("/generate-website", websiteHandler.Generate,
		middleware.RequirePermission(domain.PermCreateWebsite))
	apiGroup.GET("/websites", websiteHandler.List,
		middleware.RequirePermission(domain.PermReadWebsite))
	apiGroup.GET("/websites/:id", websiteHandler.Get,
		middleware.RequirePermission(domain.PermReadWebsite))
	apiGroup.PUT("/websites/:id", websiteHandler.Update,
		middleware.RequirePermission(domain.PermUpdateWebsite))
	apiGroup.DELETE("/websites/:id", websiteHandler.Delete,
		middleware.RequirePermission(domain.PermDeleteWebsite))
	apiGroup.POST("/regenerate-content/:id", websiteHandler.Regenerate,
		middleware.RequirePermission(domain.PermUpdateWebsite))
	apiGroup.POST("/websites/:id/publish", websiteHandler.Publish,
		middleware.RequirePermission(domain.PermPublishWebsite))
	apiGroup.POST("/websites/:id/clone", websiteHandler.Clone,
		middleware.RequirePermission(domain.PermCreateWebsite))
	apiGroup.GET("/websites/:id/analytics", websiteHandler.Analytics,
		middleware.RequirePermission(domain.PermViewAnalytics))

	// --- Admin routes ---
	adminGroup := apiGroup.Group("/admin", middleware.RequireRole(domain.RoleAdmin))

	adminGroup.GET("/users", adminHandler.ListUsers)
	adminGroup.PUT("/users/:id/role", adminHandler.AssignRole)
	adminGroup.PUT("/users/:id/status", adminHandler.SetActive)
	adminGroup.DELETE("/users/:id", adminHandler.DeleteUser)

	adminGroup.GET("/roles", adminHandler.ListRoles)
	adminGroup.POST("/roles", adminHandler.CreateRole)
	adminGroup.PUT("/roles/:id", adminHandler.UpdateRole)
	adminGroup.DELETE("/roles/:id", adminHandler.DeleteRole)

	adminGroup.GET("/dashboard", adminHandler.Dashboard)

	return e
}
