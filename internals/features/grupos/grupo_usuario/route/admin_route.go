package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	grupoUsuarioController "uesquest_backend/internals/features/grupos/grupo_usuario/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

func GrupoUsuarioAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := grupoUsuarioController.NewGrupoUsuarioController(db)

	membresias := api.Group("/grupoUsuario",
		authMiddleware.OnlyRolesSlice(
			constants.RolErrorAdmin("la gestión de grupos de usuarios"),
			constants.SoloAdmin,
		),
	)
	membresias.Get("/", ctrl.GetAll)
	membresias.Post("/", ctrl.Create)
	membresias.Put("/:id", ctrl.Update)
	membresias.Delete("/:id", ctrl.Delete)
}
