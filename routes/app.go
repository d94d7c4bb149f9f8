package routes

import (
	"fmt"
	"os"
	"time"

	"lafamilia/config"
	"lafamilia/controllers"
	"lafamilia/libs"
	"lafamilia/logger"
	"lafamilia/middleware"
	"lafamilia/models"
	"lafamilia/repositories"
	"lafamilia/services"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// App is the fully wired server.
type App struct {
	Router  *gin.Engine
	Content *repositories.ContentStore
}

// Close releases the database pool and the Redis client.
func (a *App) Close() {
	config.CloseDB()
	config.CloseRedis()
}

// NewApp connects the backing stores chosen by cfg and builds the router.
func NewApp(cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	redisClient, err := config.InitRedis(cfg, log)
	if err != nil {
		return nil, err
	}

	var cache *repositories.ContentCache
	if redisClient != nil {
		cache = repositories.NewContentCache(redisClient, cfg.CacheTTL)
	}
	content := repositories.NewContentStore(cfg.DataDir, cache, log.Named("content"))

	var (
		state       repositories.StateStore
		submissions repositories.SubmissionRepository = repositories.NewMemorySubmissionRepository()
	)
	if cfg.NeedsDatabase() {
		pool, err := config.ConnectDB(cfg, log)
		if err != nil {
			config.CloseRedis()
			return nil, err
		}
		submissions = repositories.NewPostgresSubmissionRepository(pool)
		if cfg.StateBackend == config.BackendPostgres {
			state = repositories.NewPostgresStateStore(pool)
		}
	}
	switch {
	case state != nil:
	case cfg.StateBackend == config.BackendRedis:
		state = repositories.NewRedisStateStore(redisClient)
	default:
		state = repositories.NewMemoryStateStore()
	}
	log.Info("state store ready", zap.String("backend", cfg.StateBackend))

	packages, err := repositories.LoadAdPackages(cfg.AdPackagesFile)
	if err != nil {
		return nil, fmt.Errorf("ad packages: %w", err)
	}

	var mailer services.Mailer
	emailSvc, err := models.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPNotify)
	if err != nil {
		log.Warn("mail disabled", zap.Error(err))
	} else {
		mailer = emailSvc
	}

	if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	uploader := libs.NewCreativeUploader(libs.CloudinaryConfig{
		URL:       cfg.CloudinaryURL,
		CloudName: cfg.CloudinaryCloudName,
		APIKey:    cfg.CloudinaryAPIKey,
		APISecret: cfg.CloudinaryAPISecret,
	}, cfg.UploadDir, cfg.MaxUploadSize, log.Named("uploads"))

	expiry, _ := time.ParseDuration(cfg.JWTExpiry)

	cart := services.NewCartStore(state)
	orders := services.NewOrderService(state, cart, mailer, log.Named("orders"))
	submissionSvc := services.NewSubmissionService(content, submissions, log.Named("submissions"))
	pricing := services.NewPricingService(packages, log.Named("pricing"))

	deps := Dependencies{
		Content:     content,
		Catalog:     services.NewCatalogService(content),
		Directory:   services.NewDirectoryService(content),
		Cart:        cart,
		Orders:      orders,
		Checkout:    services.NewCheckoutService(state, cart, orders),
		Pricing:     pricing,
		AdOrders:    services.NewAdOrderService(state, pricing, submissionSvc, mailer, log.Named("ads")),
		Submissions: submissionSvc,
		Visitors:    services.NewVisitorService(state),
		Uploader:    uploader,
		Admin: controllers.AdminSettings{
			Email:        cfg.AdminEmail,
			PasswordHash: cfg.AdminPasswordHash,
			JWTSecret:    cfg.JWTSecret,
			TokenExpiry:  expiry,
		},
		UploadDir: cfg.UploadDir,
	}
	if !cfg.AdminEnabled() {
		log.Warn("admin login disabled: ADMIN_EMAIL, ADMIN_PASSWORD_HASH and JWT_SECRET are required")
	}

	router := gin.New()
	if cfg.TelemetryEnabled {
		router.Use(otelgin.Middleware(config.ServiceName))
	}
	router.Use(logger.Recovery(log), logger.GinMiddleware(log))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	SetupRoutes(router, deps)

	return &App{Router: router, Content: content}, nil
}
