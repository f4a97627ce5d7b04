package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/eyobht/project_finance_app/internal/adapters/kv/filekv"
	kvpgsql "github.com/eyobht/project_finance_app/internal/adapters/kv/pgsql"
	"github.com/eyobht/project_finance_app/internal/adapters/store"
	portsrepo "github.com/eyobht/project_finance_app/internal/core/ports/repositories"
	"github.com/eyobht/project_finance_app/internal/core/services"
	"github.com/eyobht/project_finance_app/internal/handlers"
	"github.com/eyobht/project_finance_app/internal/middleware"
	"github.com/eyobht/project_finance_app/internal/platform/config"
	"github.com/eyobht/project_finance_app/pkg/database"
)

// @title PFA Backend API
// @version 1.0
// @description Project finance tracker backend.

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

	docs, cleanup, err := newDocumentStore(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize document store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	ledger := store.New(docs)
	if err := ledger.Load(context.Background()); err != nil {
		logger.Error("Failed to load ledger data", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Ledger data loaded", slog.String("backend", cfg.StoreBackend))

	repos := portsrepo.RepositoryProvider{
		CurrencyRepo:    ledger,
		ProjectRepo:     ledger,
		BudgetRepo:      ledger,
		ExpenseRepo:     ledger,
		StaffRepo:       ledger,
		TransactionRepo: ledger,
	}
	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	corsConfig.AddExposeHeaders("Content-Length", "Content-Disposition")
	r.Use(cors.New(corsConfig))

	if rate, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		logger.Warn("Invalid RATE_LIMIT value, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
	} else {
		ipLimiter := limiter.New(memory.NewStore(), rate)
		r.Use(middleware.RateLimit(ipLimiter))
	}

	handlers.RegisterRoutes(r, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newDocumentStore builds the persistence backend selected by STORE_BACKEND.
// The returned cleanup releases any pooled resources and is safe to defer.
func newDocumentStore(cfg *config.Config, logger *slog.Logger) (portsrepo.DocumentStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendPostgres:
		pool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
			database.ClosePgxPool(pool)
			return nil, nil, err
		}
		return kvpgsql.NewPgxDocumentStore(pool), func() { database.ClosePgxPool(pool) }, nil
	default:
		fs, err := filekv.New(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil
	}
}

// runMigrations applies all pending schema migrations from the migrations directory.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	// Open a standard sql.DB connection for migrations, using the pgx stdlib
	// driver to be compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && upErr != migrate.ErrNoChange {
		return upErr
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if upErr == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
