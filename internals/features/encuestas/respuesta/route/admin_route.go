package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	respuestaController "uesquest_backend/internals/features/encuestas/respuesta/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// TipoRespuestaAdminRoutes: gestión de opciones de respuesta (solo admin).
// La lectura por pregunta queda abierta a cualquier usuario autenticado:
// el formulario de responder también la consume.
func TipoRespuestaAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := respuestaController.NewTipoRespuestaController(db)

	admin := authMiddleware.OnlyRolesSlice(
		constants.RolErrorAdmin("la gestión de opciones de respuesta"),
		constants.SoloAdmin,
	)

	api.Get("/tipoRespuesta/respuesta/:preguntaId", ctrl.PorPregunta)
	api.Post("/tipoRespuesta", admin, ctrl.Create)
	api.Delete("/tipoRespuesta/:id", admin, ctrl.Delete)
}
