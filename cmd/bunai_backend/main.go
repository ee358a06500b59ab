package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sutratex/bunai-backend/internal/core/services"
	"github.com/sutratex/bunai-backend/internal/dto"
	"github.com/sutratex/bunai-backend/internal/handlers"
	"github.com/sutratex/bunai-backend/internal/middleware"
	"github.com/sutratex/bunai-backend/internal/platform/config"
	"github.com/sutratex/bunai-backend/internal/repositories/database/pgsql"
	"github.com/sutratex/bunai-backend/internal/utils"
	"github.com/sutratex/bunai-backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Bunai Backend API
// @version 1.0
// @description Textile manufacturing backend: procurement, dyeing, production, inventory, sales and the khatabook ledger.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := dto.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Primary pool: users, procurement, production, inventory, sales and the
	// unified ledger view.
	primaryPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize primary database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(primaryPool)

	// Ledger pool: the khatabook schema (parties, bills, transactions). It
	// may point at the same database; the two schemas stay separate either way.
	ledgerPool, err := database.NewPgxPool(context.Background(), cfg.LedgerDatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize ledger database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(ledgerPool)
	logger.Info("Database connection pools established.")

	if err := runMigrations(logger, cfg.DatabaseURL, "file://migrations/primary", "schema_migrations"); err != nil {
		logger.Error("Failed to apply primary migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := runMigrations(logger, cfg.LedgerDatabaseURL, "file://migrations/ledger", "khatabook_schema_migrations"); err != nil {
		logger.Error("Failed to apply ledger migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.Default(),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(primaryPool, ledgerPool)
	serviceContainer := services.NewServiceContainer(cfg, repos)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies the up migrations under sourceURL to the database at
// databaseURL. The migrations table name is overridden per schema so the
// primary and khatabook histories do not collide when both point at the same
// database.
func runMigrations(logger *slog.Logger, databaseURL, sourceURL, migrationsTable string) error {
	logger.Info("Running database migrations...", slog.String("source", sourceURL))

	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx/v5/stdlib driver to be compatible with the main pools.
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

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{MigrationsTable: migrationsTable})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
