package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fintrackio/fintrack_backend/internal/core/services"
	"github.com/fintrackio/fintrack_backend/internal/handlers"
	"github.com/fintrackio/fintrack_backend/internal/middleware"
	"github.com/fintrackio/fintrack_backend/internal/platform/config"
	"github.com/fintrackio/fintrack_backend/internal/queue"
	"github.com/fintrackio/fintrack_backend/internal/repositories/database/pgsql"
	"github.com/fintrackio/fintrack_backend/pkg/database"
	"github.com/Rhymond/go-money"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title FinTrack Backend API
// @version 1.0
// @description Personal finance ledger backend.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to run database migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)

	// The recalc queue wraps the balance service; every ledger write hands
	// the affected accounts to it for a deterministic replay.
	balanceService := services.NewBalanceService(repos.EntryRepo)
	recalcQueue := queue.NewRecalcQueue(
		func(ctx context.Context, accountID string) error {
			_, err := balanceService.RecalculateAccount(ctx, accountID)
			return err
		},
		logger,
		cfg.RecalcWorkers,
		cfg.RecalcQueueSize,
	)
	recalcQueue.Start(context.Background())
	defer recalcQueue.Stop()

	serviceContainer := services.NewServiceContainer(cfg, repos, recalcQueue)
	serviceContainer.Balance = balanceService

	registerCurrencyValidator(logger)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())
	r.Use(middleware.RateLimit(newIPRateLimiter(cfg, logger)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Block until interrupted, then drain in-flight requests and the
	// recalc queue before exiting.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()
	logger.Info("Shutdown signal received, draining...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped.")
}

// runMigrations applies all pending "up" migrations using a temporary
// standard sql.DB connection compatible with the main pgx pool.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database connection for migrations: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		return fmt.Errorf("failed to ping database for migrations: %w", err)
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create postgres driver instance for migrations: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// registerCurrencyValidator adds a "currency" binding rule that accepts
// ISO 4217 codes known to the go-money registry.
func registerCurrencyValidator(logger *slog.Logger) {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		logger.Warn("Could not register currency validator; unexpected binding engine")
		return
	}
	_ = v.RegisterValidation("currency", func(fl validator.FieldLevel) bool {
		return money.GetCurrency(fl.Field().String()) != nil
	})
}

// newIPRateLimiter builds an in-memory, per-IP rate limiter from config.
func newIPRateLimiter(cfg *config.Config, logger *slog.Logger) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", cfg.RateLimitPerMinute))
	if err != nil {
		logger.Warn("Invalid rate limit config, falling back to 120-M", slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("120-M")
	}
	return limiter.New(memory.NewStore(), rate)
}
