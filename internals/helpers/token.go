package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetUserIDFromToken toma el user_id que dejó el middleware de auth en Locals.
// Devuelve 401 si no hay sesión, 400 si el formato no es válido.
func GetUserIDFromToken(c *fiber.Ctx) (uint, error) {
	v := c.Locals("user_id")
	if v == nil {
		return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
	}

	switch t := v.(type) {
	case uint:
		if t == 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return t, nil
	case float64:
		// claims de JWT llegan como float64
		if t <= 0 {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		return uint(t), nil
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fiber.NewError(fiber.StatusUnauthorized, "Usuario no autenticado")
		}
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fiber.NewError(fiber.StatusBadRequest, "user_id inválido en el token")
		}
		return uint(id), nil
	default:
		return 0, fiber.NewError(fiber.StatusBadRequest, "user_id inválido en el token")
	}
}

// GetRolFromToken devuelve el nombre de rol que dejó el middleware en Locals.
func GetRolFromToken(c *fiber.Ctx) (string, error) {
	rol, ok := c.Locals("rol").(string)
	if !ok || strings.TrimSpace(rol) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Rol no presente en el token")
	}
	return rol, nil
}
