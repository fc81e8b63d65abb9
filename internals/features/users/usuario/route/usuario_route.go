package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	usuarioController "uesquest_backend/internals/features/users/usuario/controller"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

// UsuarioUserRoutes: endpoints de perfil propio (cualquier usuario autenticado).
func UsuarioUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := usuarioController.NewUsuarioController(db)

	usuarios := api.Group("/usuarios")
	usuarios.Get("/me", ctrl.Me)
	usuarios.Post("/usuario", ctrl.CreateUsuario)
	usuarios.Put("/usuario/:id", ctrl.UpdateUsuario)
}

// UsuarioAdminRoutes: gestión completa de usuarios (solo admin).
func UsuarioAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := usuarioController.NewUsuarioController(db)

	usuarios := api.Group("/usuarios",
		authMiddleware.OnlyRolesSlice(
			constants.RolErrorAdmin("la gestión de usuarios"),
			constants.SoloAdmin,
		),
	)
	usuarios.Get("/", ctrl.GetAll)
	usuarios.Get("/estado-usuarios", ctrl.EstadoUsuarios)
	usuarios.Post("/", ctrl.Create)
	usuarios.Put("/:id", ctrl.Update)
	usuarios.Put("/:id/inhabilitar", ctrl.Inhabilitar)
	usuarios.Put("/:id/restaurar", ctrl.Restaurar)
	usuarios.Put("/:id/cambiar-password", ctrl.CambiarPassword)
	usuarios.Delete("/:id", ctrl.Delete)
}
