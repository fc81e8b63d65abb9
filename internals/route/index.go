package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "uesquest_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== BASE =====================
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Montando rutas de autenticación...")
	routeDetails.AuthRoutes(app, db)

	// ===================== PUBLIC =====================
	// Los gráficos de resultados se consultan sin sesión; se montan antes
	// del grupo protegido para que /encuestas/datos/:id no caiga en el guard.
	log.Println("[INFO] Montando rutas públicas...")
	routeDetails.PublicRoutes(app, db)

	// ===================== PROTECTED =====================
	log.Println("[INFO] Montando rutas protegidas...")
	routeDetails.UserRoutes(app, db)
	routeDetails.AdminRoutes(app, db)

	// 404 en JSON para todo lo que no matcheó arriba.
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"code":    fiber.StatusNotFound,
			"status":  "error",
			"message": "Recurso no encontrado",
		})
	})
}
