package controller

import (
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

var validateAttendance = validator.New()

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.AttendanceService
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB:      db,
		Service: service.NewAttendanceService(db),
	}
}

// =======================
// ✅ Mark Attendance (upsert)
// =======================
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var body dto.MarkAttendanceRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAttendance.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	att, err := ctrl.Service.Mark(c.UserContext(), body.EventID, body.UserID, *body.Present)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}

	monitoring.CountAttendanceMark()
	return helper.JsonOK(c, "Attendance marked", dto.ToAttendanceDTO(*att))
}

// =======================
// 📄 Get All Attendance
// Query: ?event_id=&user_id=
// =======================
func (ctrl *AttendanceController) GetAllAttendance(c *fiber.Ctx) error {
	q := ctrl.DB.Model(&model.AttendanceModel{})
	if eventID := c.Query("event_id"); eventID != "" {
		q = q.Where("event_id = ?", eventID)
	}
	if userID := c.Query("user_id"); userID != "" {
		q = q.Where("user_id = ?", userID)
	}

	var rows []model.AttendanceModel
	if err := q.Order("attendance_id").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	resp := make([]dto.AttendanceDTO, 0, len(rows))
	for _, a := range rows {
		resp = append(resp, dto.ToAttendanceDTO(a))
	}
	return helper.JsonList(c, "", resp, nil)
}

// =======================
// 🗑️ Delete Attendance
// =======================
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid attendance id")
	}

	if err := database.DeleteWithPropagation(ctrl.DB, "attendance", "attendance_id", id, nil); err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance record")
	}

	return helper.JsonDeleted(c, "Attendance record deleted", fiber.Map{"attendance_id": id})
}
