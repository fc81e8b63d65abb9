package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	preguntaController "uesquest_backend/internals/features/encuestas/pregunta/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// PreguntaAdminRoutes: gestión de preguntas de una encuesta (solo admin).
func PreguntaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := preguntaController.NewPreguntaController(db)

	admin := authMiddleware.OnlyRolesSlice(
		constants.RolErrorAdmin("la gestión de preguntas"),
		constants.SoloAdmin,
	)

	// listado por encuesta (lo usa la pantalla de gestión de preguntas)
	api.Get("/encuestaPregunta/:id", admin, ctrl.PorEncuesta)

	preguntas := api.Group("/preguntaBase", admin)
	preguntas.Get("/", ctrl.GetAll)
	preguntas.Post("/", ctrl.Create)
	preguntas.Put("/:id", ctrl.Update)
	preguntas.Delete("/:id", ctrl.Delete)
}

// TipoPreguntaRoutes: catálogo de tipos (cualquier usuario autenticado).
func TipoPreguntaRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := preguntaController.NewTipoPreguntaController(db)

	api.Get("/tipoPregunta", ctrl.GetAll)
}
