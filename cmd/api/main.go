// Package main is the entrypoint for the PawHaven API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pawhaven/pawhaven/internal/auth"
	"github.com/pawhaven/pawhaven/internal/config"
	"github.com/pawhaven/pawhaven/internal/handler"
	"github.com/pawhaven/pawhaven/internal/metrics"
	"github.com/pawhaven/pawhaven/internal/middleware"
	"github.com/pawhaven/pawhaven/internal/repository"
	"github.com/pawhaven/pawhaven/internal/server"
	"github.com/pawhaven/pawhaven/internal/service"
)

func main() {
	// Initialize context
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg)

	// Initialize database
	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	defer repo.Close()
	logger.Info("connected to database")

	// Initialize services
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	metricsRecorder := metrics.NewInMemory()
	accountService := service.NewAccountService(repo, tokens, metricsRecorder)
	catalogService := service.NewCatalogService(repo, repo, repo)
	adoptionService := service.NewAdoptionService(repo, repo, metricsRecorder)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(repo)
	accountHandler := handler.NewAccountHandler(accountService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService, logger)
	metricsHandler := handler.NewMetricsHandler(metricsRecorder)
	staticHandler := handler.NewStaticHandler(cfg.StaticDir)

	// Setup router
	r := setupRouter(healthHandler, accountHandler, catalogHandler, adoptionHandler, metricsHandler, staticHandler, tokens, cfg, logger)

	// Create and run server
	srv := server.New(
		r,
		cfg.AppPort,
		cfg.ReadTimeout,
		cfg.WriteTimeout,
		cfg.ShutdownTimeout,
		logger,
	)

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	var h slog.Handler

	level := parseLogLevel(cfg.LogLevel)

	opts := &slog.HandlerOptions{
		Level: level,
	}

	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)

	return logger
}

// parseLogLevel converts string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(
	healthHandler *handler.HealthHandler,
	accountHandler *handler.AccountHandler,
	catalogHandler *handler.CatalogHandler,
	adoptionHandler *handler.AdoptionHandler,
	metricsHandler *handler.MetricsHandler,
	staticHandler *handler.StaticHandler,
	tokens *auth.TokenIssuer,
	cfg *config.Config,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))
	r.Use(middleware.MaxBodySize(cfg.MaxRequestBodySize))

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.GetCORSAllowedOrigins()
	r.Use(middleware.CORS(corsCfg))

	// Probes and metrics (no auth required)
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Get("/metrics", metricsHandler.Metrics)

	authCfg := middleware.AuthConfig{
		Logger: logger,
		Tokens: tokens,
	}

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Post("/register", accountHandler.Register)
		r.Post("/login", accountHandler.Login)
		r.Get("/health", healthHandler.Health)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(authCfg))

			r.Get("/stats", catalogHandler.Stats)
			r.Get("/dogs", catalogHandler.List)
			r.Get("/dogs/{id}", catalogHandler.Get)
			r.Post("/adoptions", adoptionHandler.Create)
			r.Post("/adoptions/{dogId}/complete", adoptionHandler.Complete)
		})
	})

	// Unmatched paths fall through to the frontend when STATIC_DIR is
	// configured; otherwise a JSON 404.
	r.NotFound(staticHandler.Serve)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	return r
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			parsed.User = url.User("redacted")
		} else {
			parsed.User = url.User(username)
		}
	}

	return parsed.String()
}

func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
