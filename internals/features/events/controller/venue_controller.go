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

var validateVenue = validator.New()

type VenueController struct {
	DB *gorm.DB
}

func NewVenueController(db *gorm.DB) *VenueController {
	return &VenueController{DB: db}
}

// =======================
// ➕ Create Venue
// =======================
func (ctrl *VenueController) CreateVenue(c *fiber.Ctx) error {
	var body dto.CreateVenueRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateVenue.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	venue := model.VenueModel{
		Name:     body.Name,
		Location: body.Location,
		Capacity: body.Capacity,
	}

	if err := ctrl.DB.Create(&venue).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create venue")
	}

	return helper.JsonCreated(c, "Venue created", dto.ToVenueDTO(venue))
}

// =======================
// 📄 Get All Venues
// =======================
func (ctrl *VenueController) GetAllVenues(c *fiber.Ctx) error {
	var venues []model.VenueModel
	if err := ctrl.DB.Order("venue_id").Find(&venues).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve venues")
	}

	resp := make([]dto.VenueDTO, 0, len(venues))
	for _, v := range venues {
		resp = append(resp, dto.ToVenueDTO(v))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Venue
// Events keep existing with venue_id cleared.
// =======================
func (ctrl *VenueController) DeleteVenue(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid venue id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "venues", "venue_id", id, database.VenueChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Venue not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete venue")
	}

	return helper.JsonDeleted(c, "Venue deleted", fiber.Map{"venue_id": id})
}
