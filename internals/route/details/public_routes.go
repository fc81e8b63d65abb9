package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	encuestaRoute "uesquest_backend/internals/features/encuestas/encuesta/route"
)

// PublicRoutes: endpoints sin sesión. Solo los datos agregados de gráficos.
func PublicRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")
	encuestaRoute.EncuestaPublicRoutes(api, db)
}
