package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Karmadibsa/OptiCal-Center/internal/auth"
	"github.com/Karmadibsa/OptiCal-Center/internal/batch"
	"github.com/Karmadibsa/OptiCal-Center/internal/catalog"
	"github.com/Karmadibsa/OptiCal-Center/internal/config"
	"github.com/Karmadibsa/OptiCal-Center/internal/db"
	"github.com/Karmadibsa/OptiCal-Center/internal/export"
	"github.com/Karmadibsa/OptiCal-Center/internal/middleware"
	"github.com/Karmadibsa/OptiCal-Center/internal/plan"
	"github.com/Karmadibsa/OptiCal-Center/internal/storage"
)

func main() {
	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg := config.Load()

	for _, required := range []string{"JWT_SECRET", "HOUSEHOLD_EMAIL", "HOUSEHOLD_PASSWORD"} {
		if os.Getenv(required) == "" {
			log.Fatal("missing env var", zap.String("key", required))
		}
	}

	ctx := context.Background()

	// ───────────────────────── CATALOG ─────────────────────────
	rows, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		log.Fatal("catalog load failed", zap.String("path", cfg.CatalogPath), zap.Error(err))
	}
	catalogService := catalog.NewService(rows)
	log.Info("catalog loaded", zap.Int("rows", len(rows)))

	// ───────────────────────── REPOSITORIES ─────────────────────────
	var (
		userRepo     auth.UserRepository
		profileRepo  plan.Repository
		scheduleRepo batch.Repository
	)

	if cfg.DatabaseURL != "" {
		pool, err := db.ConnectPostgres(ctx, cfg.DatabaseURL, log)
		if err != nil {
			log.Fatal("postgres connection failed", zap.Error(err))
		}
		defer pool.Close()

		userRepo = auth.NewPostgresUserRepository(pool)
		profileRepo = plan.NewPostgresRepository(pool)
		scheduleRepo = batch.NewPostgresRepository(pool)
	} else {
		log.Warn("DATABASE_URL not set, using in-memory repositories")
		userRepo = auth.NewInMemoryUserRepository()
		profileRepo = plan.NewInMemoryRepository()
		scheduleRepo = batch.NewInMemoryRepository()
	}

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(userRepo)
	if err := authService.EnsureAccount(ctx, cfg.HouseholdEmail, cfg.HouseholdPassword); err != nil {
		log.Fatal("household account seed failed", zap.Error(err))
	}

	planService := plan.NewService(profileRepo, log)
	batchService := batch.NewService(scheduleRepo, catalogService)

	var uploader export.Uploader
	if storage.Configured() {
		r2, err := storage.NewR2Client(ctx)
		if err != nil {
			log.Fatal("R2 init failed", zap.Error(err))
		}
		uploader = r2
	}

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authService)
	planHandler := plan.NewHandler(planService)
	catalogHandler := catalog.NewHandler(catalogService)
	batchHandler := batch.NewHandler(batchService)
	exportHandler := export.NewHandler(catalogService, uploader)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/auth/login", authHandler.Login)

	// Read endpoints are public; everything that mutates state needs the
	// household token.
	r.GET("/catalog", catalogHandler.GetCatalog)
	r.GET("/plans", planHandler.GetAllPlans)
	r.GET("/export/pdf", exportHandler.ExportPDF)

	profiles := r.Group("/profiles")
	{
		profiles.GET("/:person", planHandler.GetProfile)
		profiles.GET("/:person/plan", planHandler.GetPlan)
		profiles.PATCH("/:person", middleware.AuthMiddleware(), planHandler.UpdateProfile)
	}

	schedule := r.Group("/schedule")
	{
		schedule.GET("", batchHandler.GetSchedule)
		schedule.GET("/totals", batchHandler.Totals)

		protected := schedule.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.POST("/toggle", batchHandler.Toggle)
			protected.POST("/all", batchHandler.SelectAll)
			protected.POST("/weekdays", batchHandler.SelectWeekdays)
			protected.POST("/reset", batchHandler.Reset)
		}
	}

	// ───────────────────────── START ─────────────────────────
	log.Info("API running", zap.String("address", cfg.HTTPAddress))
	if err := r.Run(cfg.HTTPAddress); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
