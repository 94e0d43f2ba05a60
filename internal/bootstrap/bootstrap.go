package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/learnify/internal/app/controllers"
	appMigrations "github.com/yigit/learnify/internal/app/migrations"
	appRepos "github.com/yigit/learnify/internal/app/repositories"
	appRoutes "github.com/yigit/learnify/internal/app/routes"
	appServices "github.com/yigit/learnify/internal/app/services"
	"github.com/yigit/learnify/internal/config"
	"github.com/yigit/learnify/internal/db"
	appMiddleware "github.com/yigit/learnify/internal/middleware"
	pkgAuth "github.com/yigit/learnify/internal/pkg/auth"
	"github.com/yigit/learnify/internal/pkg/helpers"
	"github.com/yigit/learnify/internal/pkg/logger"
	"github.com/yigit/learnify/internal/pkg/validation"
	"github.com/yigit/learnify/internal/seed"
)

// DefaultConfigPath is where the server and admin CLI look for the YAML config
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ConnectDatabase opens the connection pool
func ConnectDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// RunMigrations applies pending migrations from the configured directory
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	dir := cfg.Database.MigrationsDir
	if _, err := os.Stat(dir); err != nil {
		lgr.Error().Str("path", dir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", dir, err)
	}

	lgr.Info().Str("path", dir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.Component("migrator"))
	if err := migrator.MigrateFromDirectory(ctx, dir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// NewJWTService builds the token service from configuration
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// BuildDependencies initializes services, middleware and controllers on top of repos.
func BuildDependencies(cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) *Dependencies {
	jwtService := NewJWTService(cfg)
	svc := appServices.NewServices(repos, jwtService)

	return &Dependencies{
		Repos:          repos,
		Services:       svc,
		JWTService:     jwtService,
		AuthMiddleware: appMiddleware.NewAuthMiddleware(jwtService),
		Controllers: appRoutes.Controllers{
			Auth:        appControllers.NewAuthController(svc.AuthService, logger.Component("auth-controller")),
			User:        appControllers.NewUserController(svc.UserService),
			Course:      appControllers.NewCourseController(svc.CourseService, svc.EnrollmentService, logger.Component("course-controller")),
			Chapter:     appControllers.NewChapterController(svc.ChapterService, svc.ProgressService, logger.Component("chapter-controller")),
			Certificate: appControllers.NewCertificateController(svc.CertificateService, logger.Component("certificate-controller")),
		},
		Logger: lgr,
	}
}

// SeedAdmin creates the configured default admin if it is missing
func SeedAdmin(ctx context.Context, cfg *config.Config, deps *Dependencies) error {
	return seed.EnsureAdmin(ctx, deps.Repos.UserRepository, deps.Services.AuthService, seed.AdminAccount{
		Name:     cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
	}, deps.Logger)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if err := validation.Register(); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to register validation rules")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(logger.Component("http")), appMiddleware.Recovery(deps.Logger))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
