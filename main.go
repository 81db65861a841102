package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/spf13/viper"

	"weighttracker/internal/database"
	"weighttracker/internal/handlers"
	"weighttracker/internal/middleware"
	"weighttracker/internal/repositories"
	"weighttracker/internal/services"
)

const appVersion = "1.0.0"

func main() {
	// --- Configuration ---
	// Viper reads from environment variables with these defaults.
	viper.SetDefault("APP_PORT", ":3000")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("DB_FILE", "weight_tracker.db")
	// Registration kill-switch. Off unless explicitly enabled.
	viper.SetDefault("ALLOW_REGISTRATION", false)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	dataDir := viper.GetString("DATA_DIR")
	dbFile := viper.GetString("DB_FILE")
	allowRegistration := viper.GetBool("ALLOW_REGISTRATION")

	// --- Initialize Database ---
	db, err := database.Open(dataDir, dbFile)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	log.Printf("SQLite database ready in %s", dataDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	settingsRepo := repositories.NewGORMSettingsRepository(db)
	recordRepo := repositories.NewGORMRecordRepository(db)
	backupRepo := repositories.NewGORMBackupRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, settingsRepo, allowRegistration)
	settingsService := services.NewSettingsService(settingsRepo)
	recordService := services.NewRecordService(recordRepo)
	statsService := services.NewStatsService(settingsRepo, recordRepo)
	backupService := services.NewBackupService(settingsRepo, recordRepo, backupRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	recordHandler := handlers.NewRecordHandler(recordService)
	statsHandler := handlers.NewStatsHandler(statsService)
	backupHandler := handlers.NewBackupHandler(backupService)
	healthHandler := handlers.NewHealthHandler(db, appVersion)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New())

	// --- API Routes ---
	api := app.Group("/api")

	// Public routes
	healthHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)

	// Protected routes (require a bearer token)
	protected := api.Group("", middleware.AuthRequired(authService))
	settingsHandler.RegisterRoutes(protected)
	recordHandler.RegisterRoutes(protected)
	statsHandler.RegisterRoutes(protected)
	backupHandler.RegisterRoutes(protected)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Error closing database: %v", err)
	}

	log.Println("Server gracefully stopped")
}
