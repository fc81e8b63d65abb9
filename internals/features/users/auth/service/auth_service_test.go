package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// conector que falla siempre: simula la base de datos caída.
type conectorCaido struct{}

func (conectorCaido) Connect(context.Context) (driver.Conn, error) {
	return nil, errors.New("conexión rechazada")
}

func (conectorCaido) Driver() driver.Driver { return nil }

func dbCaida(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sql.OpenDB(conectorCaido{}),
	}), &gorm.Config{DisableAutomaticPing: true})
	require.NoError(t, err)
	return db
}

// Una falla de infraestructura en el lookup no es un problema de credenciales:
// debe salir 500, nunca el 401 de "Credenciales inválidas".
func TestLoginConDBCaidaDevuelve500(t *testing.T) {
	db := dbCaida(t)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		return Login(db, c)
	})

	body := strings.NewReader(`{"correo":"ana@ues.edu.sv","password":"secreta123"}`)
	req := httptest.NewRequest("POST", "/login", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestLoginEntradaInvalidaDevuelve400(t *testing.T) {
	db := dbCaida(t)

	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		return Login(db, c)
	})

	// correo mal formado corta antes de tocar la DB
	body := strings.NewReader(`{"correo":"no-es-correo","password":"secreta123"}`)
	req := httptest.NewRequest("POST", "/login", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
