package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/lunchbox/catering-api/internal/api/handler"
	"github.com/lunchbox/catering-api/internal/api/middleware"
	"github.com/lunchbox/catering-api/internal/core/service"
	"github.com/lunchbox/catering-api/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// It fails when the signing secret is missing: the service never runs with
// an empty key.
func NewRouter(pool *pgxpool.Pool, jwtSecret string, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catering"))

	// --- Dependencies ---
	tokens, err := service.NewJWTTokenService(jwtSecret, service.DefaultTokenTTL)
	if err != nil {
		return nil, err
	}
	userRepo := postgres.NewUserRepository(pool)
	authService := service.NewAuthService(userRepo, service.NewBcryptHasher(), tokens)
	authHandler := handler.NewAuthHandler(authService)
	authMiddleware := middleware.Auth(tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(pool)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the store reachable?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
