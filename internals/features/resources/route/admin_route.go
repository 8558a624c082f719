package route

import (
	"eventhub_backend/internals/features/resources/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ResourceRoutes(api fiber.Router, db *gorm.DB) {
	resourceCtrl := controller.NewResourceController(db)
	erCtrl := controller.NewEventResourceController(db)

	resources := api.Group("/resources")
	resources.Get("/", resourceCtrl.GetAllResources)
	resources.Post("/", resourceCtrl.CreateResource)
	resources.Delete("/:id", resourceCtrl.DeleteResource)

	eventResources := api.Group("/event-resources")
	eventResources.Get("/", erCtrl.GetAllEventResources)
	eventResources.Post("/", erCtrl.CreateEventResource)
	eventResources.Delete("/:id", erCtrl.DeleteEventResource)
}
