package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	"uesquest_backend/internals/features/encuestas/realizada/dto"
)

func ptrUint(v uint) *uint    { return &v }
func ptrStr(s string) *string { return &s }

func contextoDePrueba() BatchContexto {
	return BatchContexto{
		IDRealizada: 7,
		Preguntas: map[uint]PreguntaInfo{
			1: {ID: 1, Tipo: preguntaModel.TipoDicotomica},
			2: {ID: 2, Tipo: preguntaModel.TipoMultiple},
			3: {ID: 3, Tipo: preguntaModel.TipoMixta},
			4: {ID: 4, Tipo: preguntaModel.TipoNumerica},
		},
		OpcionPregunta: map[uint]uint{
			10: 1, 11: 1,
			20: 2, 21: 2, 22: 2,
			30: 3, 31: 3,
		},
	}
}

func TestConstruirLoteVacio(t *testing.T) {
	_, err := ConstruirLote(dto.RespuestasBatchRequest{}, contextoDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vacío")
}

func TestConstruirLoteCorridaAjena(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 99, IDPregunta: 1, IDRespuesta: ptrUint(10)},
	}
	_, err := ConstruirLote(inputs, contextoDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrida")
}

func TestConstruirLotePreguntaAjena(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 999, IDRespuesta: ptrUint(10)},
	}
	_, err := ConstruirLote(inputs, contextoDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pregunta")
}

func TestConstruirLoteOpcionDeOtraPregunta(t *testing.T) {
	// opción 20 pertenece a la pregunta 2, no a la 1
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 1, IDRespuesta: ptrUint(20)},
	}
	_, err := ConstruirLote(inputs, contextoDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opción")
}

func TestConstruirLoteSinOpcionNiTexto(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 4, RespuestaTexto: ptrStr("   ")},
	}
	_, err := ConstruirLote(inputs, contextoDePrueba())
	require.Error(t, err)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 0, batchErr.Indice)
}

func TestConstruirLoteSeleccionUnicaConDosOpciones(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 1, IDRespuesta: ptrUint(10)},
		{IDRealizaEncuesta: 7, IDPregunta: 1, IDRespuesta: ptrUint(11)},
	}
	_, err := ConstruirLote(inputs, contextoDePrueba())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "una opción")
}

func TestConstruirLoteMultipleAdmiteVariasOpciones(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 2, IDRespuesta: ptrUint(20)},
		{IDRealizaEncuesta: 7, IDPregunta: 2, IDRespuesta: ptrUint(21)},
		{IDRealizaEncuesta: 7, IDPregunta: 2, IDRespuesta: ptrUint(22)},
	}
	filas, err := ConstruirLote(inputs, contextoDePrueba())
	require.NoError(t, err)
	require.Len(t, filas, 3)
	for _, f := range filas {
		assert.Equal(t, uint(7), f.IDRealizaEncuesta)
		assert.Equal(t, uint(2), f.IDPregunta)
		require.NotNil(t, f.IDRespuesta)
		assert.Nil(t, f.RespuestaTexto)
	}
}

func TestConstruirLoteMixtaConSoloTexto(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 3, RespuestaTexto: ptrStr("  otra cosa  ")},
	}
	filas, err := ConstruirLote(inputs, contextoDePrueba())
	require.NoError(t, err)
	require.Len(t, filas, 1)
	assert.Nil(t, filas[0].IDRespuesta)
	require.NotNil(t, filas[0].RespuestaTexto)
	assert.Equal(t, "otra cosa", *filas[0].RespuestaTexto)
}

func TestConstruirLoteTimestampCompartido(t *testing.T) {
	inputs := dto.RespuestasBatchRequest{
		{IDRealizaEncuesta: 7, IDPregunta: 1, IDRespuesta: ptrUint(10)},
		{IDRealizaEncuesta: 7, IDPregunta: 2, IDRespuesta: ptrUint(20)},
		{IDRealizaEncuesta: 7, IDPregunta: 4, RespuestaTexto: ptrStr("42")},
	}
	filas, err := ConstruirLote(inputs, contextoDePrueba())
	require.NoError(t, err)
	require.Len(t, filas, 3)

	ts := filas[0].CreatedAt
	for _, f := range filas {
		assert.Equal(t, ts, f.CreatedAt)
		assert.Equal(t, ts, f.UpdatedAt)
	}
}
