package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	encuestaRoute "uesquest_backend/internals/features/encuestas/encuesta/route"
	preguntaRoute "uesquest_backend/internals/features/encuestas/pregunta/route"
	respuestaRoute "uesquest_backend/internals/features/encuestas/respuesta/route"
	grupoMetaRoute "uesquest_backend/internals/features/grupos/grupo_meta/route"
	grupoUsuarioRoute "uesquest_backend/internals/features/grupos/grupo_usuario/route"
	rolRoute "uesquest_backend/internals/features/users/rol/route"
	usuarioRoute "uesquest_backend/internals/features/users/usuario/route"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// AdminRoutes: endpoints de gestión. Cada grupo aplica su guard de rol;
// aquí solo se exige sesión válida.
func AdminRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	rolRoute.RolAdminRoutes(api, db)
	usuarioRoute.UsuarioAdminRoutes(api, db)
	grupoMetaRoute.GrupoMetaAdminRoutes(api, db)
	grupoUsuarioRoute.GrupoUsuarioAdminRoutes(api, db)
	encuestaRoute.EncuestaAdminRoutes(api, db)
	preguntaRoute.PreguntaAdminRoutes(api, db)
	respuestaRoute.TipoRespuestaAdminRoutes(api, db)
}
