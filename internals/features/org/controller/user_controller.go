package controller

import (
	"strconv"

	"eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/org/dto"
	"eventhub_backend/internals/features/org/model"
	helper "eventhub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// =======================
// ➕ Create User
// =======================
func (ctrl *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	user := model.UserModel{
		Name:   body.Name,
		RollNo: body.RollNo,
		Email:  body.Email,
		Phone:  body.Phone,
		RoleID: body.RoleID,
		DeptID: body.DeptID,
	}

	// Password is write-only: stored as a bcrypt hash, no login flow here.
	if body.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		h := string(hashed)
		user.PasswordHash = &h
	}

	if err := ctrl.DB.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserDTO(user))
}

// =======================
// 📄 Get All Users (paginated)
// Query: ?page=1&per_page=20&role_id=&dept_id=
// =======================
func (ctrl *UserController) GetAllUsers(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if roleID := c.Query("role_id"); roleID != "" {
		q = q.Where("role_id = ?", roleID)
	}
	if deptID := c.Query("dept_id"); deptID != "" {
		q = q.Where("dept_id = ?", deptID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := q.
		Order("user_id").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	resp := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserDTO(u))
	}
	return helper.JsonList(c, "", resp, helper.BuildPagination(total, p))
}

// =======================
// 🗑️ Delete User
// Registrations and attendance go with the user; organized events
// survive with organizer_id cleared.
// =======================
func (ctrl *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "users", "user_id", id, database.UserChildren); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"user_id": id})
}
