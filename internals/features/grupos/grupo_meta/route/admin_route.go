package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	grupoMetaController "uesquest_backend/internals/features/grupos/grupo_meta/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

func GrupoMetaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := grupoMetaController.NewGrupoMetaController(db)

	grupos := api.Group("/grupoMeta",
		authMiddleware.OnlyRolesSlice(
			constants.RolErrorAdmin("la gestión de grupos meta"),
			constants.SoloAdmin,
		),
	)
	grupos.Get("/", ctrl.GetAll)
	grupos.Post("/", ctrl.Create)
	grupos.Put("/:id", ctrl.Update)
	grupos.Delete("/:id", ctrl.Delete)
}
