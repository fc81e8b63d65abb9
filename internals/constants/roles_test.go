package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRolIDDefaults(t *testing.T) {
	assert.Equal(t, DefaultRolAdminID, RolID(RolAdmin))
	assert.Equal(t, DefaultRolUsuarioID, RolID(RolUsuario))
}

func TestRolIDDesconocidoEsCero(t *testing.T) {
	assert.Equal(t, uint(0), RolID("superusuario"))
	assert.Equal(t, uint(0), RolID(""))
}

func TestRolIDNormalizaNombre(t *testing.T) {
	assert.Equal(t, DefaultRolAdminID, RolID("  Admin "))
}

func TestSetRolIDActualizaElMapa(t *testing.T) {
	SetRolID("auditor", 9)
	assert.Equal(t, uint(9), RolID("auditor"))
	assert.Equal(t, "auditor", NombreRol(9))
}

func TestSetRolIDIgnoraEntradasInvalidas(t *testing.T) {
	SetRolID("", 5)
	SetRolID("fantasma", 0)
	assert.Equal(t, uint(0), RolID("fantasma"))
}

func TestRolErrorAdminIncluyeElRecurso(t *testing.T) {
	msg := RolErrorAdmin("la gestión de usuarios")
	assert.Contains(t, msg, "administrador")
	assert.Contains(t, msg, "la gestión de usuarios")
}
