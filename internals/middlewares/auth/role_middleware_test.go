package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appConRol(rol string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if rol != "" {
			c.Locals("rol", rol)
		}
		return c.Next()
	})
	app.Get("/protegido", guard, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRoleGuardSinRolDevuelve401(t *testing.T) {
	app := appConRol("", OnlyRoles("solo admin", "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGuardRolNoPermitidoDevuelve403(t *testing.T) {
	app := appConRol("usuario", OnlyRoles("solo admin", "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRoleGuardRolPermitidoPasa(t *testing.T) {
	app := appConRol("admin", OnlyRoles("solo admin", "admin"))

	resp, err := app.Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleGuardSliceAceptaVariosRoles(t *testing.T) {
	guard := OnlyRolesSlice("", []string{"admin", "usuario"})

	for _, rol := range []string{"admin", "usuario"} {
		resp, err := appConRol(rol, guard).Test(httptest.NewRequest("GET", "/protegido", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := appConRol("invitado", guard).Test(httptest.NewRequest("GET", "/protegido", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
