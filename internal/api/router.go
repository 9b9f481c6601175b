package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pagewise/bookstore-api/internal/api/handler"
	"github.com/pagewise/bookstore-api/internal/api/middleware"
	"github.com/pagewise/bookstore-api/internal/core/domain"
	"github.com/pagewise/bookstore-api/internal/core/ports"
	"github.com/pagewise/bookstore-api/internal/core/service"
	"github.com/pagewise/bookstore-api/internal/infrastructure/config"
	mongostore "github.com/pagewise/bookstore-api/internal/infrastructure/db/mongo"
	redisstore "github.com/pagewise/bookstore-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/pagewise/bookstore-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Repositories are instantiated here, one generic engine per entity kind.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	audit ports.AuditRecorder,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bookstore"))

	// --- Dependencies ---
	seq := redisstore.NewSequence(rdb)
	userRepo := mongostore.NewUserRepository(db, seq)
	authorRepo := mongostore.NewRepository[domain.Author](db, "authors", seq)
	bookRepo := mongostore.NewRepository[domain.Book](db, "books", seq)

	issuer := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, issuer, audit, service.PasswordPolicy{
		MinLen: cfg.PasswordMinLen,
		MaxLen: cfg.PasswordMaxLen,
	}, log)
	authorService := service.NewAuthorService(authorRepo, log)
	bookService := service.NewBookService(bookRepo, authorRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	authorHandler := handler.NewAuthorHandler(authorService)
	bookHandler := handler.NewBookHandler(bookService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, cfg.JWTIssuer)
	readRoles := middleware.RBAC(domain.RoleCustomer, domain.RoleAdministrator)
	writeRoles := middleware.RBAC(domain.RoleAdministrator)

	// --- Auth routes (anonymous) ---
	e.POST("/api/users/login", authHandler.Login)
	e.POST("/api/users/register", authHandler.Register)

	// --- Author routes ---
	authors := e.Group("/api/authors", authMiddleware)
	authors.GET("", authorHandler.List, readRoles)
	authors.GET("/:id", authorHandler.Get, readRoles)
	authors.POST("", authorHandler.Create, writeRoles)
	authors.PUT("/:id", authorHandler.Update, writeRoles)
	authors.DELETE("/:id", authorHandler.Delete, writeRoles)

	// --- Book routes ---
	books := e.Group("/api/books", authMiddleware)
	books.GET("", bookHandler.List, readRoles)
	books.GET("/:id", bookHandler.Get, readRoles)
	books.POST("", bookHandler.Create, writeRoles)
	books.PUT("/:id", bookHandler.Update, writeRoles)
	books.DELETE("/:id", bookHandler.Delete, writeRoles)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
