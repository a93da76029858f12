package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/edufeedback/backend/internal/app/controllers"
	appMigrations "github.com/edufeedback/backend/internal/app/migrations"
	appRepos "github.com/edufeedback/backend/internal/app/repositories"
	appRoutes "github.com/edufeedback/backend/internal/app/routes"
	appServices "github.com/edufeedback/backend/internal/app/services"
	"github.com/edufeedback/backend/internal/config"
	"github.com/edufeedback/backend/internal/db"
	appMiddleware "github.com/edufeedback/backend/internal/middleware"
	pkgAuth "github.com/edufeedback/backend/internal/pkg/auth"
	"github.com/edufeedback/backend/internal/pkg/logger"
	"github.com/edufeedback/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        appServices.AuthService
	TeacherService     appServices.TeacherService
	FeedbackService    appServices.FeedbackService
	AuthController     *appControllers.AuthController
	TeacherController  *appControllers.TeacherController
	FeedbackController *appControllers.FeedbackController
	AuthMiddleware     *appMiddleware.AuthMiddleware
	Repos              *appRepos.Repositories
	JWTService         *pkgAuth.JWTService
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	if cfg.JWT.Secret == config.DevJWTSecret {
		lgr.Warn().Msg("Using development JWT secret; set JWT_SECRET before deploying")
	}

	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository, lgr)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.Repos.TeacherRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.TeacherController,
		deps.FeedbackController,
		deps.AuthMiddleware,
	)

	return router
}
