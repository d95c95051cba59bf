package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/obiwandem/varsity-backend/internal/app/controllers"
	"github.com/obiwandem/varsity-backend/internal/app/migrations"
	"github.com/obiwandem/varsity-backend/internal/app/repositories"
	"github.com/obiwandem/varsity-backend/internal/app/routes"
	"github.com/obiwandem/varsity-backend/internal/app/services"
	"github.com/obiwandem/varsity-backend/internal/config"
	"github.com/obiwandem/varsity-backend/internal/db"
	"github.com/obiwandem/varsity-backend/internal/middleware"
	"github.com/obiwandem/varsity-backend/internal/pkg/auth"
	"github.com/obiwandem/varsity-backend/internal/pkg/logger"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *controllers.Controllers
	JWTService  *auth.JWTService
}

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection and runs migrations
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s", migrationsDir)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	return database, nil
}

// BuildDependencies wires repositories, services and controllers
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	tokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: tokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database)
	svcs := services.NewServices(repos, jwtService)

	return &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Controllers: controllers.NewControllers(svcs),
		JWTService:  jwtService,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes registered
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRoutes(router, deps.Controllers, deps.Repos.UserRepository, deps.JWTService)

	return router
}
