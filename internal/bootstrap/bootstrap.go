package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/pedrohba/gradeplan/internal/app/controllers"
	appMigrations "github.com/pedrohba/gradeplan/internal/app/migrations"
	appRepos "github.com/pedrohba/gradeplan/internal/app/repositories"
	appRoutes "github.com/pedrohba/gradeplan/internal/app/routes"
	appServices "github.com/pedrohba/gradeplan/internal/app/services"
	"github.com/pedrohba/gradeplan/internal/config"
	"github.com/pedrohba/gradeplan/internal/db"
	"github.com/pedrohba/gradeplan/internal/pkg/logger"
	"github.com/pedrohba/gradeplan/internal/planner"
	"github.com/pedrohba/gradeplan/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogService    *appServices.CatalogService
	PlanService       *appServices.PlanService
	PlanController    *appControllers.PlanController
	CatalogController *appControllers.CatalogController
	Planner           *planner.Planner
	Repos             *appRepos.Repositories
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err // Return zero logger and the error
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.Apply(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Create Default Data (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	planningDefaults, err := cfg.PlanningConfig()
	if err != nil {
		lgr.Error().Err(err).Msg("Invalid planning configuration")
		return nil, fmt.Errorf("invalid planning configuration: %w", err)
	}

	deps.Planner = planner.New(lgr)

	// Initialize services
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CatalogRepository, lgr)
	deps.PlanService = appServices.NewPlanService(deps.CatalogService, deps.Planner, planningDefaults, lgr)

	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)

	return deps, nil
}

// LoadInitialCatalog fills the in-memory catalog snapshot at startup so the
// first plan request does not race a lazy load.
func LoadInitialCatalog(deps *Dependencies, lgr zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	catalog, err := deps.CatalogService.Reload(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load initial catalog")
		return fmt.Errorf("failed to load initial catalog: %w", err)
	}

	lgr.Info().Int("courses", catalog.Len()).Msg("Initial catalog loaded")
	return nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.PlanController,
		deps.CatalogController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
