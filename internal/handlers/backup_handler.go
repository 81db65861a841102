package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"weighttracker/internal/middleware"
	"weighttracker/internal/services"
)

// BackupHandler handles HTTP requests for backup and restore.
type BackupHandler struct {
	service *services.BackupService
}

// NewBackupHandler creates a new BackupHandler.
func NewBackupHandler(service *services.BackupService) *BackupHandler {
	return &BackupHandler{
		service: service,
	}
}

// RegisterRoutes registers the backup and restore routes with the Fiber app.
func (h *BackupHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/backup", h.HandleBackup)
	router.Post("/restore", h.HandleRestore)
}

// HandleBackup snapshots the user's settings and records and returns the
// serialized document alongside persisting it.
func (h *BackupHandler) HandleBackup(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	data, err := h.service.Backup(user.ID)
	if err != nil {
		log.Printf("Error backing up data for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Backup failed",
		})
	}
	return c.JSON(fiber.Map{
		"message":    "Backup successful",
		"backupData": data,
	})
}

// RestoreRequest represents the request body for a restore.
type RestoreRequest struct {
	BackupData string `json:"backupData"`
}

// HandleRestore replaces the user's settings and records from a supplied
// backup document. Parse and transaction failures both answer 500; nothing
// is partially applied.
func (h *BackupHandler) HandleRestore(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req RestoreRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing restore request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.service.Restore(user.ID, req.BackupData); err != nil {
		log.Printf("Error restoring data for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Restore failed",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Restore successful",
	})
}
