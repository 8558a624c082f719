package route

import (
	"eventhub_backend/internals/features/org/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func OrgRoutes(api fiber.Router, db *gorm.DB) {
	roleCtrl := controller.NewRoleController(db)
	deptCtrl := controller.NewDepartmentController(db)
	userCtrl := controller.NewUserController(db)

	roles := api.Group("/roles")
	roles.Get("/", roleCtrl.GetAllRoles)
	roles.Post("/", roleCtrl.CreateRole)
	roles.Delete("/:id", roleCtrl.DeleteRole)

	departments := api.Group("/departments")
	departments.Get("/", deptCtrl.GetAllDepartments)
	departments.Post("/", deptCtrl.CreateDepartment)
	departments.Delete("/:id", deptCtrl.DeleteDepartment)

	users := api.Group("/users")
	users.Get("/", userCtrl.GetAllUsers)
	users.Post("/", userCtrl.CreateUser)
	users.Delete("/:id", userCtrl.DeleteUser)
}
