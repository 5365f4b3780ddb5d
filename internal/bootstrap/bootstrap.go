package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/unibrowser/internal/app/controllers"
	appMigrations "github.com/yigit/unibrowser/internal/app/migrations"
	"github.com/yigit/unibrowser/internal/app/models"
	appRepos "github.com/yigit/unibrowser/internal/app/repositories"
	appRoutes "github.com/yigit/unibrowser/internal/app/routes"
	appServices "github.com/yigit/unibrowser/internal/app/services"
	"github.com/yigit/unibrowser/internal/app/session"
	"github.com/yigit/unibrowser/internal/app/views"
	"github.com/yigit/unibrowser/internal/config"
	"github.com/yigit/unibrowser/internal/db"
	appMiddleware "github.com/yigit/unibrowser/internal/middleware"
	"github.com/yigit/unibrowser/internal/pkg/helpers"
	"github.com/yigit/unibrowser/internal/pkg/logger"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
	"github.com/yigit/unibrowser/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Dataset      *models.Dataset
	Services     *appServices.Services
	Controllers  appRoutes.Controllers
	SessionStore session.Store
	RedisClient  *redis.Client // nil unless sessions live in redis
	RateLimiter  *appMiddleware.RateLimiter
	Metrics      *metrics.Metrics
	Logger       zerolog.Logger
}

// ConfigPath returns the config file location, CONFIG_PATH overriding the default
func ConfigPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return filepath.Join("configs", "config.yaml")
}

// LoadConfigAndSetupLogger loads .env, the configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Warn().Err(err).Msg("Ignoring unreadable .env file")
	}

	cfg, err := config.LoadConfig(ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds empty
// tables. It returns a nil pool when the dataset is not read from postgres.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	if cfg.Dataset.Source != appRepos.SourcePostgres {
		return nil, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, dbPool, lgr); err != nil {
		// Log the error but don't fail the startup; Load reports what is there
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// SetupDataset loads the read-only dataset snapshot from the configured source
func SetupDataset(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, m *metrics.Metrics, lgr zerolog.Logger) (*models.Dataset, error) {
	repos, err := appRepos.NewRepositories(cfg.Dataset.Source, cfg.Dataset.Path, dbPool)
	if err != nil {
		return nil, err
	}

	dataset, err := repos.DatasetRepository.Load(ctx)
	if err != nil {
		lgr.Error().Err(err).Str("source", cfg.Dataset.Source).Msg("Failed to load dataset")
		return nil, err
	}

	event := lgr.Info().Str("source", cfg.Dataset.Source)
	for _, category := range models.Categories {
		n := dataset.Len(category)
		m.SetDatasetRecords(string(category), n)
		event = event.Int(string(category), n)
	}
	event.Msg("Dataset loaded")

	return dataset, nil
}

// SetupSessionStore creates the configured session store. The redis client
// is returned so the server can close it on shutdown.
func SetupSessionStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (session.Store, *redis.Client, error) {
	ttl := helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour)

	if cfg.Session.Store != "redis" {
		lgr.Info().Dur("ttl", ttl).Msg("Using in-memory session store")
		return session.NewMemoryStore(ttl), nil, nil
	}

	client, err := session.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return nil, nil, err
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", ttl).Msg("Using Redis session store")
	return session.NewRedisStore(client, ttl), client, nil
}

// BuildDependencies initializes services and controllers over a loaded dataset.
func BuildDependencies(cfg *config.Config, dataset *models.Dataset, store session.Store, redisClient *redis.Client, m *metrics.Metrics, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Dataset:      dataset,
		SessionStore: store,
		RedisClient:  redisClient,
		Metrics:      m,
		Logger:       lgr,
	}

	format := helpers.NewNumberFormatter(cfg.Display.Locale)
	deps.Services = appServices.NewServices(dataset, cfg.Display.Locale, m, lgr)
	deps.RateLimiter = appMiddleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, m)

	var pinger appControllers.Pinger
	if redisStore, ok := store.(*session.RedisStore); ok {
		pinger = redisStore
	}

	deps.Controllers = appRoutes.Controllers{
		Search:  appControllers.NewSearchController(deps.Services.Search, deps.Services.Table),
		Catalog: appControllers.NewCatalogController(deps.Services.Catalog),
		Chart:   appControllers.NewChartController(deps.Services.Chart, format),
		Health:  appControllers.NewHealthController(dataset, pinger),
		Browser: appControllers.NewBrowserController(deps.Services, format, m),
	}

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Info().Str("mode", gin.Mode()).Msg("Gin mode set")

	router := gin.New()
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Metrics(deps.Metrics),
		corsMiddleware(cfg.AllowedOrigins()),
		deps.RateLimiter.Limit(),
	)

	tmpl, err := views.Templates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse page templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)

	sessions := appMiddleware.Sessions(deps.SessionStore, appMiddleware.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		Secure:     strings.ToLower(cfg.Server.Mode) == "production",
	}, deps.Metrics)

	appRoutes.SetupRouter(router, deps.Controllers, sessions)

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", appMiddleware.RequestIDHeader},
		ExposeHeaders: []string{appMiddleware.RequestIDHeader, "Retry-After"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		corsConfig.AllowAllOrigins = true
		return cors.New(corsConfig)
	}
	for _, origin := range origins {
		if origin == "*" {
			corsConfig.AllowAllOrigins = true
			return cors.New(corsConfig)
		}
	}
	corsConfig.AllowOrigins = origins
	return cors.New(corsConfig)
}
