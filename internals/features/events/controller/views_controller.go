package controller

import (
	"strconv"

	"eventhub_backend/internals/features/events/service"
	helper "eventhub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ViewController struct {
	Service *service.ViewService
}

func NewViewController(db *gorm.DB) *ViewController {
	return &ViewController{Service: service.NewViewService(db)}
}

// =======================
// 🔍 Event details (joined view)
// =======================
func (ctrl *ViewController) GetEventDetails(c *fiber.Ctx) error {
	rows, err := ctrl.Service.EventDetails(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event details")
	}
	return helper.JsonList(c, "", rows, nil)
}

// =======================
// 📊 Registration summary, all events
// =======================
func (ctrl *ViewController) GetEventSummaries(c *fiber.Ctx) error {
	rows, err := ctrl.Service.EventSummaries(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event summaries")
	}
	return helper.JsonList(c, "", rows, nil)
}

// =======================
// 📊 Registration summary, one event
// =======================
func (ctrl *ViewController) GetEventSummary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid event id")
	}

	row, err := ctrl.Service.EventSummary(c.UserContext(), uint(id))
	if err != nil {
		if helper.IsNotFound(err) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve event summary")
	}
	return helper.JsonOK(c, "", row)
}

// =======================
// 🏠 Dashboard
// =======================
func (ctrl *ViewController) GetDashboard(c *fiber.Ctx) error {
	data, err := ctrl.Service.Dashboard(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	return helper.JsonOK(c, "", data)
}
