package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uesquest_backend/internals/configs"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

func TestCreateAccessTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	t.Cleanup(func() { configs.JWTSecret = "" })

	usuario := &usuarioModel.Usuario{
		ID:     42,
		Correo: "ana@ues.edu.sv",
		IDRol:  2,
	}

	token, err := CreateAccessToken(usuario, "usuario")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "ana@ues.edu.sv", claims["correo"])
	assert.Equal(t, "usuario", claims["rol"])
	assert.Equal(t, float64(2), claims["id_rol"])
	assert.NotEmpty(t, claims["jti"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, exp, float64(time.Now().Unix()))
}

func TestCreateAccessTokenSinSecreto(t *testing.T) {
	configs.JWTSecret = ""
	_, err := CreateAccessToken(&usuarioModel.Usuario{ID: 1}, "usuario")
	assert.Error(t, err)
}

func TestParseAccessTokenFirmaInvalida(t *testing.T) {
	configs.JWTSecret = "secreto-de-prueba"
	usuario := &usuarioModel.Usuario{ID: 1, Correo: "x@y.z", IDRol: 2}
	token, err := CreateAccessToken(usuario, "usuario")
	require.NoError(t, err)

	configs.JWTSecret = "otro-secreto"
	t.Cleanup(func() { configs.JWTSecret = "" })

	_, err = ParseAccessToken(token)
	assert.Error(t, err)
}
