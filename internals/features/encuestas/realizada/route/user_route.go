package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	realizadaController "uesquest_backend/internals/features/encuestas/realizada/controller"
)

// RealizadaUserRoutes: corridas de encuesta y envío de respuestas
// (cualquier usuario autenticado).
func RealizadaUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := realizadaController.NewRealizadaController(db)

	api.Post("/encuestaRealizada", ctrl.Create)
	api.Get("/encuestaRealizada/:id", ctrl.GetByID)
	api.Post("/respuestasUsuario", ctrl.SubmitRespuestas)
}
