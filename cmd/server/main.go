package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appbilling "github.com/utilibill/backend/internal/application/billing"
	appnotification "github.com/utilibill/backend/internal/application/notification"
	"github.com/utilibill/backend/internal/domain/tariff"
	"github.com/utilibill/backend/internal/infrastructure/cache"
	"github.com/utilibill/backend/internal/infrastructure/config"
	"github.com/utilibill/backend/internal/infrastructure/delivery"
	"github.com/utilibill/backend/internal/infrastructure/event"
	"github.com/utilibill/backend/internal/infrastructure/logger"
	"github.com/utilibill/backend/internal/infrastructure/persistence"
	"github.com/utilibill/backend/internal/interfaces/http/handler"
	"github.com/utilibill/backend/internal/interfaces/http/middleware"
	"github.com/utilibill/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting utility billing backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Tariff table: built-in defaults unless the config overrides them
	table, err := buildTariffTable(cfg.Tariff)
	if err != nil {
		log.Fatal("Failed to build tariff table", zap.Error(err))
	}

	// Schedule cache: Redis when reachable, in-memory otherwise
	cacheFactory := cache.NewScheduleCacheFactory(cfg.Redis, cache.WithLogger(log))
	scheduleCache, err := cacheFactory.CreateCache()
	if err != nil {
		log.Fatal("Failed to create schedule cache", zap.Error(err))
	}
	provider := cache.NewCachedScheduleProvider(table, scheduleCache)
	calculator := tariff.NewCalculator(provider)

	// Repositories
	readingRepo := persistence.NewGormReadingRepository(db.DB)
	billRepo := persistence.NewGormBillRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)

	// Event bus with the billing audit trail subscribed
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(event.NewBillingAuditHandler(log))

	// Application services
	readingService := appbilling.NewReadingService(readingRepo, log)
	billService := appbilling.NewBillService(readingRepo, billRepo, calculator, cfg.Billing.DueDays, log).
		WithEventPublisher(eventBus)
	paymentService := appbilling.NewPaymentService(billRepo, paymentRepo, log).
		WithEventPublisher(eventBus)
	reminderService := appnotification.NewReminderService(billRepo, customerRepo, notificationRepo, delivery.NewLogSender(log), log).
		WithEventPublisher(eventBus)

	// HTTP engine
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()
	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Invalid trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Health check endpoint (outside API versioning)
	engine.GET("/healthz", healthHandler(db))

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewReadingHandler(readingService, log)).
		Register(handler.NewBillHandler(billService, paymentService, log)).
		Register(handler.NewNotificationHandler(reminderService, log))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// buildTariffTable converts configured schedule overrides into a tariff
// table, keeping the built-in defaults when no override is present.
func buildTariffTable(cfg config.TariffConfig) (*tariff.Table, error) {
	if cfg.IsZero() {
		return tariff.DefaultTable(), nil
	}

	defaults := tariff.DefaultTable()
	schedules := make([]*tariff.Schedule, 0, 2)

	for class, override := range map[tariff.ConnectionClass]config.TariffScheduleConfig{
		tariff.ClassResidential: cfg.Residential,
		tariff.ClassCommercial:  cfg.Commercial,
	} {
		if len(override.Bands) == 0 {
			schedules = append(schedules, defaults.ScheduleFor(class))
			continue
		}
		bands := make([]tariff.Band, len(override.Bands))
		for i, b := range override.Bands {
			band := tariff.Band{Rate: decimal.NewFromFloat(b.Rate)}
			if b.UpTo > 0 {
				upTo := b.UpTo
				band.UpTo = &upTo
			}
			bands[i] = band
		}
		schedule, err := tariff.NewSchedule(class, bands,
			decimal.NewFromFloat(override.FixedCharge),
			decimal.NewFromFloat(override.TaxRate))
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return tariff.NewTable(schedules...)
}

// healthHandler reports service and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqLog := logger.GetGinLogger(c)
		if err := db.Ping(); err != nil {
			reqLog.Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
