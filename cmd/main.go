package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/redis/go-redis/v9"

	"hhdonations/internal/caching"
	"hhdonations/internal/database"
	"hhdonations/internal/handlers"
	"hhdonations/internal/jobs"
	"hhdonations/internal/jobs/background"
	"hhdonations/internal/middleware"
	"hhdonations/internal/repositories"
	"hhdonations/internal/services"
)

func main() {
	ctx := context.Background()

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.Connect(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if os.Getenv("SEED_DATA") == "true" {
		if err := database.Seed(ctx, pool); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       redisDB,
	})

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(redisClient)

	// Create repositories
	binRepo := repositories.NewBinRepository(pool)
	driverRepo := repositories.NewDriverRepository(pool)
	pickupRepo := repositories.NewPickupRepository(pool)

	// Create services
	binSvc := services.NewBinService(binRepo, cacheSvc)
	driverSvc := services.NewDriverService(driverRepo)
	pickupSvc := services.NewPickupService(pickupRepo, binRepo, driverRepo, cacheSvc)

	// Create handlers
	binHandlers := handlers.NewBinHandlers(binSvc)
	driverHandlers := handlers.NewDriverHandlers(driverSvc)
	pickupHandlers := handlers.NewPickupHandlers(pickupSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, redisClient)

	// Background jobs
	statsRefreshSvc := jobs.NewStatsRefreshService(pickupSvc)
	scheduler := background.NewJobScheduler(statsRefreshSvc)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	// Public routes
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/api/bins", binHandlers.ListPublicBins)

	// Admin routes
	admin := e.Group("/api/admin", middleware.JWTMiddleware(jwtSecret), middleware.RequireAdmin())

	admin.POST("/bins", binHandlers.CreateBin)
	admin.GET("/bins", binHandlers.ListBins)
	admin.GET("/bins/:id", binHandlers.GetBinByID)
	admin.PUT("/bins/:id", binHandlers.UpdateBin)
	admin.DELETE("/bins/:id", binHandlers.DeleteBin)

	admin.POST("/drivers", driverHandlers.CreateDriver)
	admin.GET("/drivers", driverHandlers.ListDrivers)
	admin.GET("/drivers/:id", driverHandlers.GetDriverByID)
	admin.PUT("/drivers/:id", driverHandlers.UpdateDriver)
	admin.DELETE("/drivers/:id", driverHandlers.DeleteDriver)

	admin.POST("/pickups", pickupHandlers.CreatePickup)
	admin.GET("/pickups", pickupHandlers.ListPickups)
	admin.GET("/pickups/stats", pickupHandlers.GetPickupStats)
	admin.GET("/pickups/:id", pickupHandlers.GetPickupByID)
	admin.PUT("/pickups/:id", pickupHandlers.UpdatePickup)
	admin.POST("/pickups/:id/complete", pickupHandlers.CompletePickup)
	admin.POST("/pickups/:id/incomplete", pickupHandlers.MarkPickupIncomplete)
	admin.POST("/pickups/:id/cancel", pickupHandlers.CancelPickup)
	admin.DELETE("/pickups/:id", pickupHandlers.DeletePickup)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	e.Logger.Fatal(e.Start(":" + port))
}
