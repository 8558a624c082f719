package controller

import (
	"strconv"

	"eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/resources/dto"
	"eventhub_backend/internals/features/resources/model"
	helper "eventhub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateEventResource = validator.New()

type EventResourceController struct {
	DB *gorm.DB
}

func NewEventResourceController(db *gorm.DB) *EventResourceController {
	return &EventResourceController{DB: db}
}

// =======================
// ➕ Create Event Resource
// =======================
func (ctrl *EventResourceController) CreateEventResource(c *fiber.Ctx) error {
	var body dto.CreateEventResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEventResource.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	er := model.EventResourceModel{
		EventID:          body.EventID,
		ResourceID:       body.ResourceID,
		QuantityRequired: body.QuantityRequired,
	}

	if err := ctrl.DB.Create(&er).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create event resource")
	}

	return helper.JsonCreated(c, "Event resource created", dto.ToEventResourceDTO(er))
}

// =======================
// 📄 Get All Event Resources
// Query: ?event_id=
// =======================
func (ctrl *EventResourceController) GetAllEventResources(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.EventResourceModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}

	var rows []model.EventResourceModel
	if err := q.Order("er_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event resources")
	}

	resp := make([]dto.EventResourceDTO, 0, len(rows))
	for _, er := range rows {
		resp = append(resp, dto.ToEventResourceDTO(er))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Event Resource
// =======================
func (ctrl *EventResourceController) DeleteEventResource(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event resource id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "event_resources", "er_id", id, nil); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event resource not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete event resource")
	}

	return helper.JsonDeleted(c, "Event resource deleted", fiber.Map{"er_id": id})
}
