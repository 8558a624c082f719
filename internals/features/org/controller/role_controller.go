package controller

import (
	"strconv"

	"eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/org/dto"
	"eventhub_backend/internals/features/org/model"
	helper "eventhub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateRole = validator.New()

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

// =======================
// ➕ Create Role
// =======================
func (ctrl *RoleController) CreateRole(c *fiber.Ctx) error {
	var body dto.CreateRoleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRole.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	role := model.RoleModel{
		RoleName:    body.RoleName,
		Description: body.Description,
	}

	if err := ctrl.DB.Create(&role).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Role name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create role")
	}

	return helper.JsonCreated(c, "Role created", dto.ToRoleDTO(role))
}

// =======================
// 📄 Get All Roles
// =======================
func (ctrl *RoleController) GetAllRoles(c *fiber.Ctx) error {
	var roles []model.RoleModel
	if err := ctrl.DB.Order("role_id").Find(&roles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve roles")
	}

	resp := make([]dto.RoleDTO, 0, len(roles))
	for _, r := range roles {
		resp = append(resp, dto.ToRoleDTO(r))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Role
// Deleting a role clears users.role_id, it never deletes users.
// =======================
func (ctrl *RoleController) DeleteRole(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "roles", "role_id", id, database.RoleChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Role not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete role")
	}

	return helper.JsonDeleted(c, "Role deleted", fiber.Map{"role_id": id})
}
