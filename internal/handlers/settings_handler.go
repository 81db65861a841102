package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"weighttracker/internal/middleware"
	"weighttracker/internal/services"
)

// SettingsHandler handles HTTP requests for user settings.
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// RegisterRoutes registers the settings routes with the Fiber app.
func (h *SettingsHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/settings", h.HandleGetSettings)
	router.Put("/settings", h.HandleUpdateSettings)
}

// HandleGetSettings returns the user's settings, or an empty object if they
// have none yet.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	settings, err := h.service.GetSettings(user.ID)
	if err != nil {
		log.Printf("Error getting settings for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve settings",
		})
	}
	if settings == nil {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(settings)
}

// HandleUpdateSettings upserts the user's settings from the full field set.
func (h *SettingsHandler) HandleUpdateSettings(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var update services.SettingsUpdate
	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing settings request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	created, err := h.service.UpsertSettings(user.ID, update)
	if err != nil {
		log.Printf("Error saving settings for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save settings",
		})
	}

	message := "Settings updated successfully"
	if created {
		message = "Settings created successfully"
	}
	return c.JSON(fiber.Map{
		"message": message,
	})
}
