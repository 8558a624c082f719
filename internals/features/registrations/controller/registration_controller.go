package controller

import (
	"errors"
	"strconv"

	"eventhub_backend/internals/databases"
	"eventhub_backend/internals/features/registrations/dto"
	"eventhub_backend/internals/features/registrations/model"
	"eventhub_backend/internals/features/registrations/service"
	helper "eventhub_backend/internals/helpers"
	"eventhub_backend/internals/monitoring"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateRegistration = validator.New()

type RegistrationController struct {
	DB      *gorm.DB
	Service *service.RegistrationService
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{
		DB:      db,
		Service: service.NewRegistrationService(db),
	}
}

// =======================
// ➕ Register for Event (admission operation)
// =======================
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateRegistration.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	reg, err := ctrl.Service.Register(c.UserContext(), body.EventID, body.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			monitoring.CountRegistration(monitoring.OutcomeError)
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		case errors.Is(err, service.ErrAlreadyRegistered):
			monitoring.CountRegistration(monitoring.OutcomeDuplicate)
			return helper.JsonError(c, fiber.StatusConflict, "User already registered for this event")
		case errors.Is(err, service.ErrEventFull):
			monitoring.CountRegistration(monitoring.OutcomeCapacityExceeded)
			return helper.JsonError(c, fiber.StatusConflict, "Event at capacity")
		default:
			monitoring.CountRegistration(monitoring.OutcomeError)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to register for event")
		}
	}

	monitoring.CountRegistration(monitoring.OutcomeConfirmed)
	return helper.JsonCreated(c, "Registration confirmed", dto.ToRegistrationDTO(*reg))
}

// =======================
// 📄 Get All Registrations
// Query: ?event_id=&user_id=
// =======================
func (ctrl *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.RegistrationModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var regs []model.RegistrationModel
	if err := q.Order("reg_id").Find(&regs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registrations")
	}

	resp := make([]dto.RegistrationDTO, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationDTO(r))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🔍 Registration details (user-centric view)
// Query: ?user_id=
// =======================
func (ctrl *RegistrationController) GetRegistrationDetails(c *fiber.Ctx) error {
	sql := `
		SELECT r.reg_id, r.status, r.registered_at,
		       r.user_id, u.name AS user_name, u.roll_no, u.email,
		       r.event_id, e.title AS event_title, e.start_datetime, e.end_datetime
		FROM registrations r
		JOIN users u ON u.user_id = r.user_id
		JOIN events e ON e.event_id = r.event_id`

	var rows []dto.RegistrationDetailDTO
	q := ctrl.DB.Raw(sql + " ORDER BY r.reg_id")
	if userID := c.Query("user_id"); userID != "" {
		q = ctrl.DB.Raw(sql+" WHERE r.user_id = ? ORDER BY r.reg_id", userID)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve registration details")
	}

	return helper.JsonList(c, "", rows, nil)
}

// =======================
// 🗑️ Delete Registration
// =======================
func (ctrl *RegistrationController) DeleteRegistration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid registration id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "registrations", "reg_id", id, nil); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Registration not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete registration")
	}

	return helper.JsonDeleted(c, "Registration deleted", fiber.Map{"reg_id": id})
}
