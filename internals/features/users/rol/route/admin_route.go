package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	rolController "uesquest_backend/internals/features/users/rol/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

func RolAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := rolController.NewRolController(db)

	roles := api.Group("/roles",
		authMiddleware.OnlyRolesSlice(
			constants.RolErrorAdmin("la gestión de roles"),
			constants.SoloAdmin,
		),
	)
	roles.Get("/", ctrl.GetAll)
	roles.Post("/", ctrl.Create)
	roles.Put("/:id", ctrl.Update)
	roles.Delete("/:id", ctrl.Delete)
}
