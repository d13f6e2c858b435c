package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/eduplanhq/eduplan-backend/internal/app/controllers"
	appMigrations "github.com/eduplanhq/eduplan-backend/internal/app/migrations"
	appRepos "github.com/eduplanhq/eduplan-backend/internal/app/repositories"
	appRoutes "github.com/eduplanhq/eduplan-backend/internal/app/routes"
	appServices "github.com/eduplanhq/eduplan-backend/internal/app/services"
	"github.com/eduplanhq/eduplan-backend/internal/config"
	"github.com/eduplanhq/eduplan-backend/internal/db"
	appMiddleware "github.com/eduplanhq/eduplan-backend/internal/middleware"
	pkgAuth "github.com/eduplanhq/eduplan-backend/internal/pkg/auth"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/email"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/helpers"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/logger"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/scorecard"
	"github.com/eduplanhq/eduplan-backend/internal/pkg/sms"
	"github.com/eduplanhq/eduplan-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	PlanService          *appServices.PlanService
	UniversityService    *appServices.UniversityService
	CustomerService      *appServices.CustomerService
	DashboardService     *appServices.DashboardService
	ReferenceService     *appServices.ReferenceService
	IntakeService        *appServices.IntakeService
	NotifyService        *appServices.NotifyService
	AuthController       *appControllers.AuthController
	PlanController       *appControllers.PlanController
	UniversityController *appControllers.UniversityController
	CustomerController   *appControllers.CustomerController
	DashboardController  *appControllers.DashboardController
	GlobalController     *appControllers.GlobalController
	IntakeController     *appControllers.IntakeController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, cfg, lgr); err != nil {
		// Startup continues; the seed runs again on the next start.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	scorecardClient := scorecard.NewClient(scorecard.Config{
		BaseURL: cfg.Scorecard.BaseURL,
		APIKey:  cfg.Scorecard.APIKey,
	}, lgr)

	emailService := email.NewEmailService(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	smsService := sms.NewTwilioService(sms.TwilioConfig{
		AccountSID: cfg.Twilio.AccountSID,
		AuthToken:  cfg.Twilio.AuthToken,
		FromNumber: cfg.Twilio.FromNumber,
	}, lgr)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.PlanService = appServices.NewPlanService(deps.Repos.PlanRepository, deps.Repos.UserRepository)
	deps.UniversityService = appServices.NewUniversityService(scorecardClient)
	deps.CustomerService = appServices.NewCustomerService(deps.Repos.CustomerRepository, deps.Repos.UserRepository)
	deps.DashboardService = appServices.NewDashboardService(appServices.NewRepoCounter(deps.Repos))
	deps.ReferenceService = appServices.NewReferenceService(deps.Repos.ReferenceRepository)
	deps.IntakeService = appServices.NewIntakeService(deps.Repos.IntakeRepository)
	deps.NotifyService = appServices.NewNotifyService(emailService, smsService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.NotifyService)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.CustomerController = appControllers.NewCustomerController(deps.CustomerService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.GlobalController = appControllers.NewGlobalController(deps.ReferenceService)
	deps.IntakeController = appControllers.NewIntakeController(deps.IntakeService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger())
	router.Use(appMiddleware.Recovery(cfg.Server.Debug))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PlanController,
		deps.UniversityController,
		deps.CustomerController,
		deps.DashboardController,
		deps.GlobalController,
		deps.IntakeController,
		deps.AuthMiddleware,
	)

	return router
}
