package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func llamar(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/x", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/x", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestSuccessEnvuelveLaRespuesta(t *testing.T) {
	status, body := llamar(t, func(c *fiber.Ctx) error {
		return Success(c, "todo bien", fiber.Map{"id": 1})
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "todo bien", body["message"])
	assert.NotNil(t, body["data"])
}

func TestErrorEnvuelveElMensaje(t *testing.T) {
	status, body := llamar(t, func(c *fiber.Ctx) error {
		return Error(c, fiber.StatusConflict, "duplicado")
	})

	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "duplicado", body["message"])
}

func TestValidationErrorDetallaCampos(t *testing.T) {
	type entrada struct {
		Correo string `validate:"required,email"`
	}
	v := validator.New()
	errValidacion := v.Struct(entrada{Correo: "malo"})
	require.Error(t, errValidacion)

	status, body := llamar(t, func(c *fiber.Ctx) error {
		return ValidationError(c, errValidacion)
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	errores, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errores, "Correo")
}

func TestValidationErrorConErrorGenerico(t *testing.T) {
	status, body := llamar(t, func(c *fiber.Ctx) error {
		return ValidationError(c, assert.AnError)
	})

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Entrada inválida", body["message"])
}
