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

var validateCategory = validator.New()

type CategoryController struct {
	DB *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{DB: db}
}

// =======================
// ➕ Create Category
// =======================
func (ctrl *CategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCategory.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	active := true
	if body.ActiveStatus != nil {
		active = *body.ActiveStatus
	}

	category := model.CategoryModel{
		Name:         body.Name,
		Description:  body.Description,
		Icon:         body.Icon,
		ActiveStatus: active,
	}

	if err := ctrl.DB.Create(&category).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Category name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}

	return helper.JsonCreated(c, "Category created", dto.ToCategoryDTO(category))
}

// =======================
// 📄 Get All Categories
// Query: ?active=true|false
// =======================
func (ctrl *CategoryController) GetAllCategories(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.CategoryModel{})
	if active := c.Query("active"); active != "" {
		b, err := strconv.ParseBool(active)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid active filter")
		}
		q = q.Where("active_status = ?", b)
	}

	var categories []model.CategoryModel
	if err := q.Order("category_id").Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve categories")
	}

	resp := make([]dto.CategoryDTO, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryDTO(cat))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Category
// Events keep existing with category_id cleared.
// =======================
func (ctrl *CategoryController) DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid category id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "categories", "category_id", id, database.CategoryChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete category")
	}

	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"category_id": id})
}
