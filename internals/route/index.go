package routes

import (
	"log"

	eventsRoute "eventhub_backend/internals/features/events/route"
	orgRoute "eventhub_backend/internals/features/org/route"
	registrationsRoute "eventhub_backend/internals/features/registrations/route"
	resourcesRoute "eventhub_backend/internals/features/resources/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	log.Println("[INFO] Setting up OrgRoutes...")
	orgRoute.OrgRoutes(api, db)

	log.Println("[INFO] Setting up EventRoutes...")
	eventsRoute.EventRoutes(api, db)

	log.Println("[INFO] Setting up RegistrationRoutes...")
	registrationsRoute.RegistrationRoutes(api, db)

	log.Println("[INFO] Setting up ResourceRoutes...")
	resourcesRoute.ResourceRoutes(api, db)
}
