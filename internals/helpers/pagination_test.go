package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolver(t *testing.T, url string, defaultPerPage, maxPerPage int) Paging {
	t.Helper()

	var got Paging
	app := fiber.New()
	app.Get("/lista", func(c *fiber.Ctx) error {
		got = ResolvePaging(c, defaultPerPage, maxPerPage)
		return c.SendString("ok")
	})

	resp, err := app.Test(httptest.NewRequest("GET", url, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	return got
}

func TestWantsPaging(t *testing.T) {
	casos := map[string]bool{
		"/lista":                  false,
		"/lista?orden=asc":        false,
		"/lista?page=2":           true,
		"/lista?per_page=10":      true,
		"/lista?limit=5":          true,
		"/lista?page=1&limit=50":  true,
		"/lista?page=%20":         false,
	}
	for url, esperado := range casos {
		var got bool
		app := fiber.New()
		app.Get("/lista", func(c *fiber.Ctx) error {
			got = WantsPaging(c)
			return c.SendString("ok")
		})
		_, err := app.Test(httptest.NewRequest("GET", url, nil))
		require.NoError(t, err)
		assert.Equal(t, esperado, got, url)
	}
}

func TestResolvePagingDefaults(t *testing.T) {
	p := resolver(t, "/lista", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestResolvePagingConQuery(t *testing.T) {
	p := resolver(t, "/lista?page=3&per_page=10", 20, 100)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestResolvePagingAliasLimit(t *testing.T) {
	p := resolver(t, "/lista?limit=15", 20, 100)
	assert.Equal(t, 15, p.PerPage)
}

func TestResolvePagingNormalizaInvalidos(t *testing.T) {
	p := resolver(t, "/lista?page=-2&per_page=0", 20, 100)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestResolvePagingRespetaTope(t *testing.T) {
	p := resolver(t, "/lista?per_page=5000", 20, 100)
	assert.Equal(t, 100, p.PerPage)
}

func TestBuildPagination(t *testing.T) {
	pag := BuildPagination(45, Paging{Page: 2, PerPage: 20})
	assert.Equal(t, int64(45), pag.Total)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	vacia := BuildPagination(0, Paging{Page: 1, PerPage: 20})
	assert.Equal(t, 1, vacia.TotalPages)
	assert.False(t, vacia.HasNext)
	assert.False(t, vacia.HasPrev)
}
