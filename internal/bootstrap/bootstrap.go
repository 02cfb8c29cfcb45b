package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/yigit/careerhub/internal/app/clients/authservice"
	appControllers "github.com/yigit/careerhub/internal/app/controllers"
	appMigrations "github.com/yigit/careerhub/internal/app/migrations"
	appRepos "github.com/yigit/careerhub/internal/app/repositories"
	appRoutes "github.com/yigit/careerhub/internal/app/routes"
	appServices "github.com/yigit/careerhub/internal/app/services"
	"github.com/yigit/careerhub/internal/config"
	"github.com/yigit/careerhub/internal/db"
	"github.com/yigit/careerhub/internal/domain/registration"
	appMiddleware "github.com/yigit/careerhub/internal/middleware"
	pkgAuth "github.com/yigit/careerhub/internal/pkg/auth"
	"github.com/yigit/careerhub/internal/pkg/helpers"
	"github.com/yigit/careerhub/internal/pkg/logger"
	"github.com/yigit/careerhub/internal/pkg/tracing"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                  *appRepos.Repositories
	AccountCreator         registration.AccountCreator
	RegistrationService    *appServices.RegistrationService
	RegistrationController *appControllers.RegistrationController
	OrphanService          *appServices.OrphanService
	OrphanController       *appControllers.OrphanController
	// JWTService is nil when no auth service JWT secret is configured.
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Tracing        *tracing.Provider
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFor(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
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
	lgr.Info().Msg("Database connection successfully established.")

	if err := RunMigrations(database.Pool, lgr); err != nil {
		database.Close()
		return nil, err
	}

	return database.Pool, nil
}

// RunMigrations applies the bundled schema migrations.
func RunMigrations(pool *pgxpool.Pool, lgr zerolog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(pool, appMigrations.Files()).Up(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return nil
}

// SetupTracing creates the tracer provider from config.
func SetupTracing(cfg *config.Config) (*tracing.Provider, error) {
	return tracing.NewProvider(tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		Exporter:     cfg.Tracing.Exporter,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRate:   cfg.Tracing.SampleRate,
		ServiceName:  cfg.Tracing.ServiceName,
	})
}

// NewJWTService builds the token service from the auth service secret, or returns nil without one.
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	if cfg.AuthService.JWTSecret == "" {
		return nil
	}
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.AuthService.JWTSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.AuthService.TokenExpiration, time.Hour),
		TokenIssuer:    cfg.AuthService.Issuer,
	})
}

// NewAccountCreator returns the auth service provider selected in config.
func NewAccountCreator(cfg *config.Config, repos *appRepos.Repositories) (registration.AccountCreator, error) {
	timeout := helpers.ParseDuration(cfg.AuthService.Timeout, 10*time.Second)

	switch cfg.AuthService.Provider {
	case "remote":
		return authservice.NewRemoteClient(authservice.RemoteConfig{
			BaseURL:   cfg.AuthService.BaseURL,
			APIKey:    cfg.AuthService.APIKey,
			Timeout:   timeout,
			JWTSecret: cfg.AuthService.JWTSecret,
		}, nil), nil
	case "local":
		jwtService := NewJWTService(cfg)
		if jwtService == nil {
			return nil, fmt.Errorf("the local auth provider needs a JWT secret")
		}
		return authservice.NewLocalProvider(repos.AuthUserRepository, jwtService), nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.AuthService.Provider)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, tracer *tracing.Provider, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr, Tracing: tracer}

	deps.Repos = appRepos.NewRepositories(dbPool)

	accounts, err := NewAccountCreator(cfg, deps.Repos)
	if err != nil {
		return nil, err
	}
	deps.AccountCreator = accounts
	lgr.Info().Str("provider", cfg.AuthService.Provider).Msg("Auth service provider configured")

	pipeline := registration.NewPipeline(
		deps.AccountCreator,
		deps.Repos.ProfileRepository,
		cfg.Registration.PasswordPlaceholder,
		tracer.Tracer(),
	)

	deps.RegistrationService = appServices.NewRegistrationService(
		appServices.SettingsFromConfig(&cfg.Registration),
		pipeline,
		deps.Repos.OrphanRepository,
		lgr,
	)

	deps.RegistrationController = appControllers.NewRegistrationController(deps.RegistrationService, lgr)

	deps.OrphanService = appServices.NewOrphanService(deps.Repos.OrphanRepository, lgr)
	deps.OrphanController = appControllers.NewOrphanController(deps.OrphanService, lgr)

	deps.JWTService = NewJWTService(cfg)
	if deps.JWTService != nil {
		deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)
	} else {
		lgr.Warn().Msg("No auth service JWT secret configured, operator routes are disabled")
	}

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

	appMiddleware.RegisterJSONTagNames()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "route not found"})
	})

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.RegistrationController, deps.OrphanController, deps.AuthMiddleware)

	return router
}
