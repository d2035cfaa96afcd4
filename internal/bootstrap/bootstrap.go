// Package bootstrap wires configuration, database, services and routes.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/skhostel/hostelpay/docs" // Import generated swagger docs
	appControllers "github.com/skhostel/hostelpay/internal/app/controllers"
	appMigrations "github.com/skhostel/hostelpay/internal/app/migrations"
	"github.com/skhostel/hostelpay/internal/app/notify"
	appRepos "github.com/skhostel/hostelpay/internal/app/repositories"
	appRoutes "github.com/skhostel/hostelpay/internal/app/routes"
	appServices "github.com/skhostel/hostelpay/internal/app/services"
	"github.com/skhostel/hostelpay/internal/config"
	"github.com/skhostel/hostelpay/internal/db"
	appMiddleware "github.com/skhostel/hostelpay/internal/middleware"
	pkgAuth "github.com/skhostel/hostelpay/internal/pkg/auth"
	"github.com/skhostel/hostelpay/internal/pkg/filestorage"
	"github.com/skhostel/hostelpay/internal/pkg/logger"
	"github.com/skhostel/hostelpay/internal/pkg/upi"
	"github.com/skhostel/hostelpay/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	PaymentService    *appServices.PaymentService
	StudentService    *appServices.StudentService
	BookingService    *appServices.BookingService
	AuthController    *appControllers.AuthController
	PaymentController *appControllers.PaymentController
	AdminController   *appControllers.AdminController
	BookingController *appControllers.BookingController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Repos             *appRepos.Repositories
	SessionService    *pkgAuth.SessionService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
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

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed the default admin account after migrations
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg.Admin.Username, cfg.Admin.Password, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves student photos under the static uploads path
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:  cfg.Session.Secret,
		TTL:        cfg.SessionTTL(),
		Issuer:     cfg.Session.Issuer,
		CookieName: cfg.Session.CookieName,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		deps.FileStorage,
		appServices.BootstrapAdmin{
			Username: cfg.Admin.Username,
			Password: cfg.Admin.Password,
			ID:       appServices.BootstrapAdminID,
		},
		lgr,
	)

	notifier := notify.NewLogNotifier(lgr)
	deps.PaymentService = appServices.NewPaymentService(
		deps.Repos.PaymentRepository,
		deps.Repos.StudentRepository,
		notifier,
		lgr,
	)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.BookingService = appServices.NewBookingService(upi.Payee{
		VPA:  cfg.UPI.VPA,
		Name: cfg.UPI.PayeeName,
	})

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionService, lgr)
	deps.PaymentController = appControllers.NewPaymentController(deps.PaymentService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.StudentService, lgr)
	deps.BookingController = appControllers.NewBookingController(deps.BookingService)

	return deps, nil
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

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PaymentController,
		deps.AdminController,
		deps.BookingController,
		deps.SessionMiddleware,
	)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}
