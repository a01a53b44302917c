package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tahadev/portfolio/internal/api/handler"
	"github.com/tahadev/portfolio/internal/api/middleware"
	"github.com/tahadev/portfolio/internal/core/ports"
	"github.com/tahadev/portfolio/internal/core/service"
)

// Services groups the wired application services the router exposes.
type Services struct {
	Auth     ports.AuthService
	Tokens   ports.TokenService
	Users    ports.UserService
	Projects ports.ProjectService
	Contact  ports.ContactService
	Images   ports.ImageStore
	UserRepo ports.UserRepository
}

// Options carries router construction parameters.
type Options struct {
	Production bool
	Logger     zerolog.Logger
	// UploadDir, when set, is served under /uploads so stored images are
	// reachable at the URLs the upload endpoint hands out.
	UploadDir string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svcs Services, db *mongo.Database, rdb *redis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger, opts.Production)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svcs.Auth)
	projectHandler := handler.NewProjectHandler(svcs.Projects)
	userHandler := handler.NewUserHandler(svcs.Users)
	contactHandler := handler.NewContactHandler(svcs.Contact)
	uploadHandler := handler.NewUploadHandler(svcs.Images)

	// --- Middleware chain: Authenticate resolves the token to a user,
	// RequireAdmin enforces the role. Order matters. ---
	authenticate := middleware.Authenticate(svcs.Tokens, svcs.UserRepo, opts.Logger)
	requireAdmin := middleware.RequireAdmin()

	// --- Auth routes (public) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Project routes: listing is public, mutation is admin-gated ---
	e.GET("/api/projects", projectHandler.List)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.POST("/api/projects", projectHandler.Create, authenticate, requireAdmin)
	e.DELETE("/api/projects/:id", projectHandler.Delete, authenticate, requireAdmin)

	// --- User management (admin only) ---
	e.GET("/api/users", userHandler.List, authenticate, requireAdmin)
	e.DELETE("/api/users/:id", userHandler.Delete, authenticate, requireAdmin)
	e.PUT("/api/users/:id/role", userHandler.ToggleRole, authenticate, requireAdmin)

	// --- Contact form (public) ---
	e.POST("/api/contact", contactHandler.Submit)

	// --- Image upload (admin only) ---
	e.POST("/api/upload", uploadHandler.Upload, authenticate, requireAdmin)
	if opts.UploadDir != "" {
		e.Static("/uploads", opts.UploadDir)
	}

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	return e
}

// Ensure the concrete services satisfy their ports at compile time.
var (
	_ ports.AuthService    = (*service.AuthService)(nil)
	_ ports.TokenService   = (*service.TokenService)(nil)
	_ ports.UserService    = (*service.UserService)(nil)
	_ ports.ProjectService = (*service.ProjectService)(nil)
	_ ports.ContactService = (*service.ContactService)(nil)
)
