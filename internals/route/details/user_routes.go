package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	encuestaRoute "uesquest_backend/internals/features/encuestas/encuesta/route"
	preguntaRoute "uesquest_backend/internals/features/encuestas/pregunta/route"
	realizadaRoute "uesquest_backend/internals/features/encuestas/realizada/route"
	usuarioRoute "uesquest_backend/internals/features/users/usuario/route"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// UserRoutes: endpoints para cualquier usuario autenticado.
func UserRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	usuarioRoute.UsuarioUserRoutes(api, db)
	encuestaRoute.EncuestaUserRoutes(api, db)
	preguntaRoute.TipoPreguntaRoutes(api, db)
	realizadaRoute.RealizadaUserRoutes(api, db)
}
