package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/devfolio/portfolio-api/docs"
	"github.com/devfolio/portfolio-api/internal/api/handler"
	"github.com/devfolio/portfolio-api/internal/api/middleware"
	"github.com/devfolio/portfolio-api/internal/core/ports"
)

// Deps is the process-wide dependency set. It is constructed once at startup
// and injected into every handler; nothing in the API layer reaches for
// globals.
type Deps struct {
	Mongo    *mongo.Database
	Redis    *redis.Client
	Auth     ports.AuthService
	Resolver ports.SessionResolver
	Content  ports.ContentService
	Site     ports.SiteService
	Logger   zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))
	e.Use(middleware.Session(d.Resolver))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	projectHandler := handler.NewProjectHandler(d.Content)
	skillHandler := handler.NewSkillHandler(d.Content)
	certificateHandler := handler.NewCertificateHandler(d.Content)
	timelineHandler := handler.NewTimelineHandler(d.Content)
	contactHandler := handler.NewContactHandler(d.Site)
	siteHandler := handler.NewSiteHandler(d.Site)
	dashboardHandler := handler.NewDashboardHandler(d.Content)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Public content ---
	e.GET("/projects", projectHandler.List)
	e.GET("/skills", skillHandler.List)
	e.GET("/certificates", certificateHandler.List)
	e.GET("/education", timelineHandler.ListEducation)
	e.GET("/experience", timelineHandler.ListExperience)
	e.GET("/contact", contactHandler.Info)
	e.POST("/contact/messages", contactHandler.SubmitMessage)
	e.GET("/resume", siteHandler.DownloadResume)

	// --- Admin surface: authentication decided before authorization ---
	admin := e.Group("/admin", middleware.RequireAuthenticated, middleware.RequirePrivileged)

	admin.GET("/dashboard", dashboardHandler.Counts)

	admin.POST("/projects", projectHandler.Create)
	admin.PUT("/projects/:id", projectHandler.Update)
	admin.DELETE("/projects/:id", projectHandler.Delete)

	admin.POST("/skills", skillHandler.Create)
	admin.PUT("/skills/:id", skillHandler.Update)
	admin.DELETE("/skills/:id", skillHandler.Delete)

	admin.POST("/certificates", certificateHandler.Create)
	admin.PUT("/certificates/:id", certificateHandler.Update)
	admin.DELETE("/certificates/:id", certificateHandler.Delete)

	admin.POST("/education", timelineHandler.CreateEducation)
	admin.PUT("/education/:id", timelineHandler.UpdateEducation)
	admin.DELETE("/education/:id", timelineHandler.DeleteEducation)

	admin.POST("/experience", timelineHandler.CreateExperience)
	admin.PUT("/experience/:id", timelineHandler.UpdateExperience)
	admin.DELETE("/experience/:id", timelineHandler.DeleteExperience)

	admin.GET("/messages", contactHandler.ListMessages)
	admin.PUT("/contact", contactHandler.UpdateInfo)

	admin.GET("/images", siteHandler.ListImages)
	admin.PUT("/images/:name", siteHandler.UploadImage)
	admin.DELETE("/images/:name", siteHandler.DeleteImage)
	admin.POST("/resume", siteHandler.UploadResume)

	// --- Observability & docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
