package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pressroom/newsdesk/internal/api/handler"
	"github.com/pressroom/newsdesk/internal/api/middleware"
	"github.com/pressroom/newsdesk/internal/core/domain"
	"github.com/pressroom/newsdesk/internal/core/ports"
)

// RouterDeps carries everything the HTTP layer needs; construction of the
// services themselves happens in the bootstrap.
type RouterDeps struct {
	AuthService    ports.AuthService
	ArticleService ports.ArticleService
	AuditQuery     ports.AuditQuery
	Blobs          ports.BlobStore
	Mongo          *mongo.Database
	Redis          *redis.Client
	Logger         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("newsdesk"))

	authRequired := middleware.Auth(deps.AuthService)
	authOptional := middleware.OptionalAuth(deps.AuthService)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.AuthService)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Article routes ---
	articleHandler := handler.NewArticleHandler(deps.ArticleService)
	e.GET("/articles", articleHandler.List)
	e.GET("/articles/:id", articleHandler.Get, authOptional)
	e.POST("/articles", articleHandler.Create, authRequired)
	e.PUT("/articles/:id", articleHandler.Edit, authRequired)
	e.DELETE("/articles/:id", articleHandler.Delete, authRequired)

	// --- Admin routes ---
	auditHandler := handler.NewAuditHandler(deps.AuditQuery)
	admin := e.Group("/admin", authRequired, adminOnly)
	admin.DELETE("/articles/:id", articleHandler.Purge)
	admin.GET("/articles/:id/events", auditHandler.Events)
	admin.POST("/users/:id/promote", authHandler.Promote)
	admin.POST("/users/:id/demote", authHandler.Demote)

	// --- Uploaded images ---
	uploadHandler := handler.NewUploadHandler(deps.Blobs)
	e.GET("/uploads/:ref", uploadHandler.Serve)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
