package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"weighttracker/internal/middleware"
	"weighttracker/internal/services"
)

// StatsHandler handles HTTP requests for the statistics summary.
type StatsHandler struct {
	service *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(service *services.StatsService) *StatsHandler {
	return &StatsHandler{
		service: service,
	}
}

// RegisterRoutes registers the stats route with the Fiber app.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/stats", h.HandleGetStatistics)
}

// HandleGetStatistics returns the derived statistics summary for the user.
func (h *StatsHandler) HandleGetStatistics(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	stats, err := h.service.GetStatistics(user.ID)
	if err != nil {
		log.Printf("Error computing statistics for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not compute statistics",
		})
	}
	return c.JSON(stats)
}
