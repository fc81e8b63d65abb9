package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLoginInput(t *testing.T) {
	assert.NoError(t, ValidateLoginInput("ana@ues.edu.sv", "secreta123"))
	assert.Error(t, ValidateLoginInput("", "secreta123"))
	assert.Error(t, ValidateLoginInput("ana@ues.edu.sv", "   "))
	assert.Error(t, ValidateLoginInput("no-es-correo", "secreta123"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("ochocar8"))
	assert.Error(t, ValidatePassword("corta"))
}

func TestValidateResetPassword(t *testing.T) {
	assert.NoError(t, ValidateResetPassword("ana@ues.edu.sv", "nueva-clave-1"))
	assert.Error(t, ValidateResetPassword("malo", "nueva-clave-1"))
	assert.Error(t, ValidateResetPassword("ana@ues.edu.sv", "corta"))
}

func TestHashYCheckPassword(t *testing.T) {
	hash, err := HashPassword("secreta123")
	require.NoError(t, err)
	assert.NotEqual(t, "secreta123", hash)

	assert.NoError(t, CheckPasswordHash(hash, "secreta123"))
	assert.Error(t, CheckPasswordHash(hash, "otra"))
}
