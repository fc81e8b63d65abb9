package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "uesquest_backend/internals/features/users/auth/controller"
	"uesquest_backend/internals/middlewares"
	authMiddleware "uesquest_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api := app.Group("/api")

	// Públicas (con limiter estricto)
	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	api.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ResetPassword)

	// Requieren token válido
	api.Get("/me", authMiddleware.AuthMiddleware(db), ctrl.Me)
	api.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
