package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"weighttracker/internal/database"
)

// HealthHandler answers the unauthenticated health probe.
type HealthHandler struct {
	db        *gorm.DB
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new HealthHandler. Uptime is measured from the
// moment of construction.
func NewHealthHandler(db *gorm.DB, version string) *HealthHandler {
	return &HealthHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// RegisterRoutes registers the health route with the Fiber app.
func (h *HealthHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/health", h.HandleHealth)
}

// HandleHealth probes the store and reports process metadata.
func (h *HealthHandler) HandleHealth(c *fiber.Ctx) error {
	if err := database.Ping(h.db); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Database connection failed",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"status":    "ok",
		"message":   "Application is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   h.version,
		"database":  "SQLite",
		"uptime":    time.Since(h.startTime).Seconds(),
	})
}
