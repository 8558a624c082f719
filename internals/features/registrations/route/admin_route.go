package route

import (
	"eventhub_backend/internals/features/registrations/controller"
	middlewares "eventhub_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func RegistrationRoutes(api fiber.Router, db *gorm.DB) {
	regCtrl := controller.NewRegistrationController(db)
	attCtrl := controller.NewAttendanceController(db)

	registrations := api.Group("/registrations")
	registrations.Get("/", regCtrl.GetAllRegistrations)
	registrations.Get("/details", regCtrl.GetRegistrationDetails)
	registrations.Post("/", middlewares.RegistrationRateLimiter(), regCtrl.Register)
	registrations.Delete("/:id", regCtrl.DeleteRegistration)

	attendance := api.Group("/attendance")
	attendance.Get("/", attCtrl.GetAllAttendance)
	attendance.Post("/", attCtrl.MarkAttendance)
	attendance.Delete("/:id", attCtrl.DeleteAttendance)
}
