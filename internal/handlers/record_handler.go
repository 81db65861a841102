package handlers

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"weighttracker/internal/middleware"
	"weighttracker/internal/models"
	"weighttracker/internal/repositories"
	"weighttracker/internal/services"
)

// RecordHandler handles HTTP requests for weight records.
type RecordHandler struct {
	service  *services.RecordService
	validate *validator.Validate
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(service *services.RecordService) *RecordHandler {
	return &RecordHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the record routes with the Fiber app.
func (h *RecordHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/records", h.HandleListRecords)
	router.Get("/records/:date", h.HandleGetRecordByDate)
	router.Post("/records", h.HandleUpsertRecord)
	router.Delete("/records/:date", h.HandleDeleteRecord)
}

// HandleListRecords returns the user's records, optionally narrowed to an
// inclusive date range and ordered by the sort query parameter.
func (h *RecordHandler) HandleListRecords(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	filter := repositories.RecordFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Sort:      c.Query("sort", repositories.SortDateDesc),
	}

	records, err := h.service.ListRecords(user.ID, filter)
	if err != nil {
		log.Printf("Error listing records for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve records",
		})
	}
	if records == nil {
		records = []models.WeightRecord{}
	}
	return c.JSON(records)
}

// HandleGetRecordByDate returns the record for the date in the path, or JSON
// null if none exists.
func (h *RecordHandler) HandleGetRecordByDate(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	date := c.Params("date")

	record, err := h.service.GetRecordByDate(user.ID, date)
	if err != nil {
		log.Printf("Error getting record for user %s on %s: %v", user.ID, date, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve record",
		})
	}
	return c.JSON(record)
}

// UpsertRecordRequest represents the request body for recording a weight.
type UpsertRecordRequest struct {
	Date    string  `json:"date" validate:"required"`
	Weight  float64 `json:"weight" validate:"required"`
	Feeling string  `json:"feeling"`
	Notes   string  `json:"notes"`
}

// HandleUpsertRecord creates the record for (user, date) or updates it in
// place, answering 201 for a new row and 200 for an update.
func (h *RecordHandler) HandleUpsertRecord(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var req UpsertRecordRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing record request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Date and weight are required",
		})
	}

	created, err := h.service.UpsertRecord(user.ID, req.Date, req.Weight, req.Feeling, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Date and weight are required",
			})
		}
		log.Printf("Error saving record for user %s: %v", user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not save record",
		})
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Record created successfully",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Record updated successfully",
	})
}

// HandleDeleteRecord removes the record for the date in the path. Deleting
// an absent record still answers 200.
func (h *RecordHandler) HandleDeleteRecord(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	date := c.Params("date")

	if err := h.service.DeleteRecord(user.ID, date); err != nil {
		log.Printf("Error deleting record for user %s on %s: %v", user.ID, date, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not delete record",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Record deleted successfully",
	})
}
