package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	encuestaController "uesquest_backend/internals/features/encuestas/encuesta/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// EncuestaPublicRoutes: vistas de gráficos (sin sesión).
func EncuestaPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := encuestaController.NewEncuestaController(db)

	api.Get("/encuestas/datos/:id", ctrl.Datos)
}

// EncuestaUserRoutes: encuestas disponibles y formulario (usuario autenticado).
func EncuestaUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := encuestaController.NewEncuestaController(db)

	api.Get("/mis-encuestas", ctrl.MisEncuestas)
	api.Get("/encuestaPreguntaForm/:id", ctrl.Formulario)
}

// EncuestaAdminRoutes: CRUD de encuestas (solo admin).
func EncuestaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := encuestaController.NewEncuestaController(db)

	encuestas := api.Group("/encuestas",
		authMiddleware.OnlyRolesSlice(
			constants.RolErrorAdmin("la gestión de encuestas"),
			constants.SoloAdmin,
		),
	)
	encuestas.Get("/", ctrl.GetAll)
	encuestas.Get("/:id", ctrl.GetByID)
	encuestas.Post("/", ctrl.Create)
	encuestas.Put("/:id", ctrl.Update)
	encuestas.Delete("/:id", ctrl.Delete)
}
