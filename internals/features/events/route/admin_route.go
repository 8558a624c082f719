package route

import (
	"eventhub_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EventRoutes(api fiber.Router, db *gorm.DB) {
	venueCtrl := controller.NewVenueController(db)
	categoryCtrl := controller.NewCategoryController(db)
	eventCtrl := controller.NewEventController(db)
	viewCtrl := controller.NewViewController(db)

	venues := api.Group("/venues")
	venues.Get("/", venueCtrl.GetAllVenues)
	venues.Post("/", venueCtrl.CreateVenue)
	venues.Delete("/:id", venueCtrl.DeleteVenue)

	categories := api.Group("/categories")
	categories.Get("/", categoryCtrl.GetAllCategories)
	categories.Post("/", categoryCtrl.CreateCategory)
	categories.Delete("/:id", categoryCtrl.DeleteCategory)

	events := api.Group("/events")
	events.Get("/", eventCtrl.GetAllEvents)
	events.Post("/", eventCtrl.CreateEvent)
	// static paths before /:id so Fiber doesn't swallow them
	events.Get("/details", viewCtrl.GetEventDetails)
	events.Get("/summary", viewCtrl.GetEventSummaries)
	events.Get("/:id/summary", viewCtrl.GetEventSummary)
	events.Delete("/:id", eventCtrl.DeleteEvent)

	api.Get("/dashboard", viewCtrl.GetDashboard)
}
