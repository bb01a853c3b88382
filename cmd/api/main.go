package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/horeca-prospection/backend/config"
	"github.com/horeca-prospection/backend/pkg/api/handlers"
	apimw "github.com/horeca-prospection/backend/pkg/api/middleware"
	"github.com/horeca-prospection/backend/pkg/audit"
	"github.com/horeca-prospection/backend/pkg/cache"
	"github.com/horeca-prospection/backend/pkg/database"
	"github.com/horeca-prospection/backend/pkg/enrichment"
	"github.com/horeca-prospection/backend/pkg/export"
	"github.com/horeca-prospection/backend/pkg/jobs"
	"github.com/horeca-prospection/backend/pkg/logger"
	"github.com/horeca-prospection/backend/pkg/maps"
	"github.com/horeca-prospection/backend/pkg/metrics"
	custommiddleware "github.com/horeca-prospection/backend/pkg/middleware"
	"github.com/horeca-prospection/backend/pkg/prospects"
	"github.com/horeca-prospection/backend/pkg/stats"
	"github.com/horeca-prospection/backend/pkg/storage"
	"github.com/horeca-prospection/backend/pkg/tours"
	"github.com/horeca-prospection/backend/pkg/users"
	"github.com/horeca-prospection/backend/pkg/visits"
)

func main() {
	cfg := config.Load()
	log.Printf("🔧 Configuration loaded (environment: %s)", cfg.APIEnvironment)

	appLogger := logger.New(cfg.LogLevel, "service", "api")

	if cfg.SentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.SentryEnvironment,
			TracesSampleRate: 1.0,
			AttachStacktrace: true,
		})
		if err != nil {
			log.Printf("⚠️  Failed to initialize Sentry: %v", err)
		} else {
			log.Printf("✅ Sentry initialized (environment: %s)", cfg.SentryEnvironment)
			defer sentry.Flush(2 * time.Second)
		}
	} else {
		log.Printf("ℹ️  Sentry disabled (no DSN configured)")
	}

	db, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer db.Close()

	redisClient, err := cache.NewClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	prometheusMetrics := metrics.New()
	log.Printf("✅ Prometheus metrics initialized")

	// Services
	auditLogger := audit.NewService(db.Ent, appLogger)
	prospectService := prospects.NewService(db.Ent, redisClient)
	visitService := visits.NewService(db.Ent, redisClient)
	tourService := tours.NewService(db.Ent)
	userService := users.NewService(db.Ent)
	authService := users.NewAuthService(db.Ent, cfg)
	statsService := stats.NewService(db.Ent)
	exportService := export.NewService(prospectService)

	mapsService, err := maps.NewService(cfg.GoogleMapsAPIKey)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Google Maps client: %v", err)
	}
	if mapsService == nil {
		log.Printf("ℹ️  Geocoding disabled (no Google Maps API key)")
	}

	storageService, err := storage.NewService(storage.Config{
		AWSAccessKeyID:     cfg.AWSAccessKeyID,
		AWSSecretAccessKey: cfg.AWSSecretAccessKey,
		AWSRegion:          cfg.AWSRegion,
		Bucket:             cfg.S3Bucket,
	})
	if err != nil {
		log.Fatalf("❌ Failed to initialize S3 storage: %v", err)
	}
	if storageService == nil {
		log.Printf("ℹ️  Attachments disabled (no S3 bucket configured)")
	}

	// Enrichment queue client
	var enqueuer *enrichment.Enqueuer
	redisOpt, err := asynq.ParseRedisURI(cfg.RedisURL)
	if err != nil {
		log.Fatalf("❌ Failed to parse Redis URL for queue: %v", err)
	}
	asynqClient := asynq.NewClient(redisOpt)
	defer asynqClient.Close()
	if cfg.OpenAIAPIKey != "" {
		enqueuer = enrichment.NewEnqueuer(asynqClient, cfg.WorkerMaxRetries)
	} else {
		log.Printf("ℹ️  AI enrichment disabled (no OpenAI API key)")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, auditLogger, prometheusMetrics)
	prospectHandler := handlers.NewProspectHandler(prospectService, exportService, mapsService, enqueuer, auditLogger, prometheusMetrics)
	visitHandler := handlers.NewVisitHandler(visitService, auditLogger, prometheusMetrics)
	tourHandler := handlers.NewTourHandler(tourService, auditLogger, prometheusMetrics)
	userHandler := handlers.NewUserHandler(userService, auditLogger)
	statsHandler := handlers.NewStatsHandler(statsService)
	attachmentHandler := handlers.NewAttachmentHandler(db.Ent, storageService)

	// Echo
	e := echo.New()
	e.HideBanner = true

	globalRateLimiter := custommiddleware.NewRateLimiter(cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	authRateLimiter := custommiddleware.NewRateLimiter(5, 2)

	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			appLogger.Info("request", "method", c.Request().Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(echomw.Recover())

	if cfg.SentryDSN != "" {
		e.Use(sentryecho.New(sentryecho.Options{
			Repanic: true,
		}))
	}

	e.Use(prometheusMetrics.Middleware())

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}))

	e.Use(echomw.Gzip())
	e.Use(echomw.Secure())

	e.Use(globalRateLimiter.RateLimitMiddleware())

	// Public banner. With a valid token the greeting is personalized.
	e.GET("/", func(c echo.Context) error {
		greeting := "HORECA Prospection API"
		if email, ok := c.Get("user_email").(string); ok && email != "" {
			greeting = fmt.Sprintf("HORECA Prospection API — bonjour %s", email)
		}
		return c.JSON(http.StatusOK, map[string]any{
			"name":        greeting,
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	}, apimw.OptionalAuth(cfg.JWTSecret))

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		if _, err := redisClient.Redis.Ping(c.Request().Context()).Result(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status": "unhealthy",
				"cache":  "down",
			})
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    "up",
		})
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group(cfg.APIPrefix)

	// Auth (public)
	authGroup := v1.Group("/auth")
	authGroup.POST("/register", authHandler.Register, authRateLimiter.RateLimitMiddleware())
	authGroup.POST("/login", authHandler.Login, authRateLimiter.RateLimitMiddleware())
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)

	// Everything below requires a valid access token
	authenticated := v1.Group("", apimw.Authenticate(cfg.JWTSecret))

	authenticated.GET("/auth/me", authHandler.Me)
	authenticated.PUT("/auth/me", authHandler.UpdateMe)
	authenticated.POST("/auth/change-password", userHandler.ChangePassword)

	// Prospects
	authenticated.GET("/prospects", prospectHandler.List)
	authenticated.GET("/prospects/nearby", prospectHandler.Nearby)
	authenticated.GET("/prospects/export", prospectHandler.Export)
	authenticated.GET("/prospects/:id", prospectHandler.Get)
	authenticated.POST("/prospects", prospectHandler.Create)
	authenticated.PUT("/prospects/:id", prospectHandler.Update)
	authenticated.DELETE("/prospects/:id", prospectHandler.Delete, apimw.Authorize("admin", "manager"))
	authenticated.POST("/prospects/:id/enrich", prospectHandler.Enrich)

	// Visits
	authenticated.GET("/visits", visitHandler.List)
	authenticated.GET("/visits/stats", visitHandler.Stats)
	authenticated.GET("/visits/:id", visitHandler.Get)
	authenticated.POST("/visits", visitHandler.Create)
	authenticated.PUT("/visits/:id", visitHandler.Update)
	authenticated.DELETE("/visits/:id", visitHandler.Delete)

	// Tours
	authenticated.GET("/tours", tourHandler.List)
	authenticated.GET("/tours/:id", tourHandler.Get)
	authenticated.POST("/tours", tourHandler.Create)
	authenticated.PUT("/tours/:id", tourHandler.Update)
	authenticated.DELETE("/tours/:id", tourHandler.Delete)
	authenticated.POST("/tours/:id/start", tourHandler.Start)
	authenticated.POST("/tours/:id/complete", tourHandler.Complete)
	authenticated.POST("/tours/:id/cancel", tourHandler.Cancel)
	authenticated.POST("/tours/:id/steps", tourHandler.AddSteps)
	authenticated.PUT("/tours/:id/steps/:stepId", tourHandler.UpdateStep)
	authenticated.DELETE("/tours/:id/steps/:stepId", tourHandler.DeleteStep)

	// Stats
	authenticated.GET("/stats/overview", statsHandler.Overview)
	authenticated.GET("/stats/conversions", statsHandler.Conversions)
	authenticated.GET("/stats/heatmap", statsHandler.Heatmap)
	authenticated.GET("/stats/by-user", statsHandler.ByUser, apimw.Authorize("admin", "manager"))

	// Team management (admin only, except listing)
	authenticated.GET("/users", userHandler.List, apimw.Authorize("admin", "manager"))
	authenticated.GET("/users/:id", userHandler.Get, apimw.Authorize("admin", "manager"))
	authenticated.POST("/users", userHandler.Create, apimw.Authorize("admin"))
	authenticated.PUT("/users/:id", userHandler.Update, apimw.Authorize("admin"))
	authenticated.DELETE("/users/:id", userHandler.Delete, apimw.Authorize("admin"))

	// Attachments
	authenticated.POST("/attachments/presign", attachmentHandler.Presign)
	authenticated.GET("/attachments", attachmentHandler.ListByOwner)
	authenticated.GET("/attachments/:id/download", attachmentHandler.Download)

	// Scheduled jobs
	cronManager := jobs.NewCronManager(db.Ent, visitService, authService, log.Default())
	if err := cronManager.SetupJobs(); err != nil {
		log.Fatalf("❌ Failed to set up cron jobs: %v", err)
	}
	cronManager.Start()

	address := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	log.Printf("🚀 HORECA Prospection API starting on %s", address)
	log.Printf("🛡️  Rate limiting: %d req/min (burst: %d)", cfg.RateLimitRequestsPerMinute, cfg.RateLimitBurst)
	log.Printf("⏰ Cron jobs: Daily 3AM (stats reconciliation), Daily 4AM (token purge)")

	go func() {
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	cronManager.Stop()
	log.Println("✅ Cron jobs stopped")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server gracefully stopped")
}
