// Package main implements the entry point for the customer API server,
// which exposes CRUD operations over customer records backed by
// PostgreSQL, with optional redis response caching.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/customer-api/internal/api"
	"github.com/phrazzld/customer-api/internal/config"
	"github.com/phrazzld/customer-api/internal/platform/logger"
	"github.com/phrazzld/customer-api/internal/platform/postgres"
	"github.com/phrazzld/customer-api/internal/platform/rediscache"
	"github.com/phrazzld/customer-api/internal/service"
)

// shutdownTimeout bounds how long in-flight requests may run once a
// termination signal arrives.
const shutdownTimeout = 10 * time.Second

// application holds the initialized dependencies of the server process.
type application struct {
	config    *config.Config
	logger    *slog.Logger
	db        *sql.DB
	cache     *rediscache.Cache
	handler   *api.CustomerHandler
	startedAt time.Time
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

// initializeApp loads configuration and wires the application components
// in dependency order: config, logger, database, migrations, cache,
// store, service, handler.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(logger.Config{Level: cfg.Server.LogLevel})

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"cache_enabled", cfg.Cache.RedisURL != "",
		"rate_limit_enabled", cfg.RateLimit.Enabled)

	db, err := openDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db, appLogger); err != nil {
		_ = db.Close()
		return nil, err
	}

	var cache *rediscache.Cache
	if cfg.Cache.RedisURL != "" {
		cache, err = rediscache.New(cfg.Cache.RedisURL, appLogger)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
	}

	customerStore := postgres.NewPostgresCustomerStore(db, appLogger)

	customerService, err := service.NewCustomerService(customerStore, appLogger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create customer service: %w", err)
	}

	return &application{
		config:    cfg,
		logger:    appLogger,
		db:        db,
		cache:     cache,
		handler:   api.NewCustomerHandler(customerService, appLogger),
		startedAt: time.Now(),
	}, nil
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// startHTTPServer starts the HTTP server and blocks until a termination
// signal arrives, then drains in-flight requests before returning.
func (app *application) startHTTPServer(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", app.config.Server.Port),
		Handler: app.setupRouter(),
	}

	serverCtx, cancelServer := context.WithCancel(ctx)
	defer cancelServer()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		app.logger.Info("Starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.logger.Error("Server failed", "error", err)
			cancelServer()
		}
	}()

	select {
	case <-shutdownCh:
		app.logger.Info("Shutting down server...")
	case <-serverCtx.Done():
		app.logger.Info("Server context canceled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error("Server shutdown failed", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.cleanup()

	app.logger.Info("Server shutdown completed")
	return nil
}

// cleanup releases the long-lived resources held by the application.
func (app *application) cleanup() {
	if app.cache != nil {
		if err := app.cache.Close(); err != nil {
			app.logger.Error("Failed to close redis connection", "error", err)
		}
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}
