package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFechasParseaRangoValido(t *testing.T) {
	req := EncuestaRequest{FechaInicio: "2026-03-01", FechaFin: "2026-03-15"}

	inicio, fin, err := req.Fechas()
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", time.Time(inicio).Format("2006-01-02"))
	assert.Equal(t, "2026-03-15", time.Time(fin).Format("2006-01-02"))
}

func TestFechasRechazaFormatoInvalido(t *testing.T) {
	req := EncuestaRequest{FechaInicio: "01/03/2026", FechaFin: "2026-03-15"}
	_, _, err := req.Fechas()
	assert.Error(t, err)

	req = EncuestaRequest{FechaInicio: "2026-03-01", FechaFin: "mañana"}
	_, _, err = req.Fechas()
	assert.Error(t, err)
}
