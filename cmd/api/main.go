package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"profeed/internal/common/pagination"
	"profeed/internal/config"
	pgRepo "profeed/internal/infra/adapter/persistence/postgres"
	"profeed/internal/infra/db"
	"profeed/internal/observability/logging"
	"profeed/internal/observability/tracing"
	"profeed/internal/resilience/circuitbreaker"
	pkgconfig "profeed/pkg/config"

	feedUC "profeed/internal/usecase/feed"
	profUC "profeed/internal/usecase/profile"

	hhttp "profeed/internal/handler/http"
	hfeed "profeed/internal/handler/http/feed"
	hprofile "profeed/internal/handler/http/profile"
	"profeed/internal/handler/http/requestid"
	"profeed/internal/handler/http/validate"
)

// @title           Profeed API
// @version         1.0
// @description     REST API serving professional profiles and activity feeds.
// @description     Provides profile creation and lookup by user or phone number, and paginated feed listings.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Static API token. Pass it as "Bearer {token}".

func main() {
	logger := initLogger()

	cfg := loadConfig(logger)
	token := resolveAuthToken(logger, cfg)
	systemUserID := resolveSystemUserID(logger, cfg)

	database := initDatabase(logger)
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	version := getVersion()
	handler := setupServer(logger, cfg, database, token, systemUserID, version)

	runServer(logger, cfg, handler, version)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadConfig loads the service configuration from the YAML file named by
// CONFIG_PATH, defaulting to config.yaml in the working directory.
func loadConfig(logger *slog.Logger) *config.Config {
	path := pkgconfig.GetEnvString("CONFIG_PATH", "config.yaml")
	cfg, err := config.Load(path)
	if err != nil {
		logger.Error("failed to load configuration",
			slog.String("path", path),
			slog.Any("error", err))
		os.Exit(1)
	}
	return cfg
}

// resolveAuthToken resolves the API bearer token at startup so the server
// never comes up without authentication configured.
func resolveAuthToken(logger *slog.Logger, cfg *config.Config) string {
	token, err := cfg.AuthToken()
	if err != nil {
		logger.Error("auth token validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	return token
}

// resolveSystemUserID resolves the system user identifier that owns publicly
// listed feeds. Ingested feeds are attributed to this user.
func resolveSystemUserID(logger *slog.Logger, cfg *config.Config) string {
	id, err := cfg.SystemUserID()
	if err != nil {
		logger.Error("system user validation failed", slog.Any("error", err))
		os.Exit(1)
	}
	return id
}

// initDatabase opens the database connection and runs migrations.
func initDatabase(logger *slog.Logger) *sql.DB {
	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", slog.Any("error", err))
		os.Exit(1)
	}
	if err := db.MigrateUp(database); err != nil {
		logger.Error("failed to migrate database", slog.Any("error", err))
		os.Exit(1)
	}
	return database
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgconfig.GetEnvString("VERSION", "dev")
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg *config.Config, database *sql.DB, token, systemUserID, version string) http.Handler {
	// All repository access goes through the circuit breaker so a failing
	// database sheds load instead of piling up connections.
	breaker := circuitbreaker.NewDBCircuitBreaker(database)

	profSvc := &profUC.Service{
		Users:    pgRepo.NewUserRepo(breaker),
		Profiles: pgRepo.NewProfileRepo(breaker),
	}
	feedSvc := &feedUC.Service{
		Repo:         pgRepo.NewFeedRepo(breaker),
		SystemUserID: systemUserID,
	}

	validator := validate.New()
	paginationCfg := pagination.LoadFromEnv()

	mux := http.NewServeMux()
	hprofile.Register(mux, profSvc, validator, token, logger)
	hfeed.Register(mux, feedSvc, validator, paginationCfg, token, logger)

	mux.Handle("GET /health", &hhttp.HealthHandler{DB: database, Breaker: breaker, Version: version})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	mux.Handle("GET /{$}", &hhttp.RootHandler{Service: "profeed", Version: version})

	return applyMiddleware(logger, cfg, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outermost first): request ID, tracing, recovery, logging, body limit, metrics.
func applyMiddleware(logger *slog.Logger, cfg *config.Config, handler http.Handler) http.Handler {
	chain := handler

	// Applied in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.Server.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = tracing.Middleware(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg *config.Config, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout.Std(),
		WriteTimeout:      cfg.Server.WriteTimeout.Std(),
		IdleTimeout:       cfg.Server.IdleTimeout.Std(),
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr()),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
