package dto

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El cliente arma id_realiza_encuesta con el parámetro de la ruta,
// así que a veces llega "12" y a veces 12.
func TestFlexIDAceptaStringYNumero(t *testing.T) {
	var batch RespuestasBatchRequest
	payload := `[
		{"id_realiza_encuesta": "12", "id_pregunta": 1, "id_respuesta": 10, "respuesta_texto": null},
		{"id_realiza_encuesta": 12, "id_pregunta": 2, "id_respuesta": null, "respuesta_texto": "hola"}
	]`
	require.NoError(t, sonic.Unmarshal([]byte(payload), &batch))
	require.Len(t, batch, 2)

	assert.Equal(t, FlexID(12), batch[0].IDRealizaEncuesta)
	assert.Equal(t, FlexID(12), batch[1].IDRealizaEncuesta)

	require.NotNil(t, batch[0].IDRespuesta)
	assert.Equal(t, uint(10), *batch[0].IDRespuesta)
	assert.Nil(t, batch[0].RespuestaTexto)

	assert.Nil(t, batch[1].IDRespuesta)
	require.NotNil(t, batch[1].RespuestaTexto)
	assert.Equal(t, "hola", *batch[1].RespuestaTexto)
}

func TestFlexIDRechazaBasura(t *testing.T) {
	var f FlexID
	assert.Error(t, f.UnmarshalJSON([]byte(`"abc"`)))
}

func TestFlexIDNuloQuedaEnCero(t *testing.T) {
	var f FlexID
	require.NoError(t, f.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, FlexID(0), f)
}
