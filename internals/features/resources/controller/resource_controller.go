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

var validateResource = validator.New()

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

// =======================
// ➕ Create Resource
// =======================
func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	var body dto.CreateResourceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resource := model.ResourceModel{
		ResourceName:  body.ResourceName,
		TotalQuantity: body.TotalQuantity,
	}

	if err := ctrl.DB.Create(&resource).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Resource name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}

	return helper.JsonCreated(c, "Resource created", dto.ToResourceDTO(resource))
}

// =======================
// 📄 Get All Resources
// =======================
func (ctrl *ResourceController) GetAllResources(c *fiber.Ctx) error {
	var resources []model.ResourceModel
	if err := ctrl.DB.Order("resource_id").Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve resources")
	}

	resp := make([]dto.ResourceDTO, 0, len(resources))
	for _, r := range resources {
		resp = append(resp, dto.ToResourceDTO(r))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Resource
// Event bookings of the resource go with it.
// =======================
func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "resources", "resource_id", id, database.ResourceChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}

	return helper.JsonDeleted(c, "Resource deleted", fiber.Map{"resource_id": id})
}
