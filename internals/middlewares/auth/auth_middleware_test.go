package auth

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sin Authorization ni cookie el guard corta con 401 antes de tocar la DB.
func TestAuthMiddlewareSinTokenDevuelve401(t *testing.T) {
	app := fiber.New()
	app.Get("/privado", AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/privado", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAuthorizationMalFormado(t *testing.T) {
	app := fiber.New()
	app.Get("/privado", AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for _, header := range []string{"token-sin-esquema", "Basic abc", "Bearer "} {
		req := httptest.NewRequest("GET", "/privado", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestValidateTokenExpiry(t *testing.T) {
	vivo := jwt.MapClaims{"exp": float64(time.Now().Add(time.Hour).Unix())}
	assert.NoError(t, validateTokenExpiry(vivo, 30*time.Second))

	// dentro del margen de tolerancia sigue siendo válido
	reciente := jwt.MapClaims{"exp": float64(time.Now().Add(-10 * time.Second).Unix())}
	assert.NoError(t, validateTokenExpiry(reciente, 30*time.Second))

	muerto := jwt.MapClaims{"exp": float64(time.Now().Add(-time.Hour).Unix())}
	assert.Error(t, validateTokenExpiry(muerto, 30*time.Second))

	sinExp := jwt.MapClaims{}
	assert.Error(t, validateTokenExpiry(sinExp, 30*time.Second))
}

func TestExtractUserID(t *testing.T) {
	id, err := extractUserID(jwt.MapClaims{"user_id": float64(42)})
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)

	_, err = extractUserID(jwt.MapClaims{})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"user_id": "42"})
	assert.Error(t, err)

	_, err = extractUserID(jwt.MapClaims{"user_id": float64(0)})
	assert.Error(t, err)
}
