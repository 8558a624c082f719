package controller

import (
	"strconv"

	"eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/events/dto"
	"eventhub_backend/internals/features/events/model"
	helper "eventhub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateEvent = validator.New()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// =======================
// ➕ Create Event
// =======================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	status := body.Status
	if status == nil {
		def := "scheduled"
		status = &def
	}

	event := model.EventModel{
		Title:         body.Title,
		Description:   body.Description,
		CategoryID:    body.CategoryID,
		OrganizerID:   body.OrganizerID,
		VenueID:       body.VenueID,
		StartDatetime: body.StartDatetime,
		EndDatetime:   body.EndDatetime,
		Capacity:      body.Capacity,
		Status:        status,
	}

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event")
	}

	return helper.JsonCreated(c, "Event created", dto.ToEventDTO(event))
}

// =======================
// 📄 Get All Events (paginated)
// Query: ?page=&per_page=&category_id=&venue_id=&status=
// =======================
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{})
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}
	if venueID := c.Query("venue_id"); venueID != "" {
		q = q.Where("venue_id = ?", venueID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count events")
	}

	var events []model.EventModel
	if err := q.
		Order("event_id").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve events")
	}

	resp := make([]dto.EventDTO, 0, len(events))
	for _, ev := range events {
		resp = append(resp, dto.ToEventDTO(ev))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🗑️ Delete Event
// Registrations, attendance and resource bookings go with the event.
// =======================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "events", "event_id", id, database.EventChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event")
	}

	return helper.JsonDeleted(c, "Event deleted", fiber.Map{"event_id": id})
}
