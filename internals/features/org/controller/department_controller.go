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

var validateDepartment = validator.New()

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

// =======================
// ➕ Create Department
// =======================
func (ctrl *DepartmentController) CreateDepartment(c *fiber.Ctx) error {
	var body dto.CreateDepartmentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDepartment.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	dept := model.DepartmentModel{
		DeptName: body.DeptName,
		DeptCode: body.DeptCode,
		HodName:  body.HodName,
	}

	if err := ctrl.DB.Create(&dept).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Department name or code already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create department")
	}

	return helper.JsonCreated(c, "Department created", dto.ToDepartmentDTO(dept))
}

// =======================
// 📄 Get All Departments
// =======================
func (ctrl *DepartmentController) GetAllDepartments(c *fiber.Ctx) error {
	var depts []model.DepartmentModel
	if err := ctrl.DB.Order("dept_id").Find(&depts).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve departments")
	}

	resp := make([]dto.DepartmentDTO, 0, len(depts))
	for _, d := range depts {
		resp = append(resp, dto.ToDepartmentDTO(d))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Department
// Users referencing the department survive with dept_id cleared.
// =======================
func (ctrl *DepartmentController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid department id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "departments", "dept_id", id, database.DepartmentChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Department not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete department")
	}

	return helper.JsonDeleted(c, "Department deleted", fiber.Map{"dept_id": id})
}
