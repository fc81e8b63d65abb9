package dto

import (
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

// FlexID acepta número o string numérico en el JSON. El cliente arma el
// id de corrida desde el parámetro de la ruta y a veces lo manda como string.
type FlexID uint

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*f = FlexID(n)
	return nil
}

func (f FlexID) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(uint(f))
}

// EncuestaRealizadaRequest: abre una corrida de encuesta para el usuario del token.
type EncuestaRealizadaRequest struct {
	IDUsuario  uint `json:"id_usuario"`
	IDEncuesta uint `json:"id_encuesta" validate:"required,gt=0"`
}

// RespuestaUsuarioInput: una respuesta atómica dentro del lote.
// id_respuesta nulo ⇒ respuesta de texto libre; respuesta_texto nulo ⇒
// opción marcada. Nunca ambos nulos.
type RespuestaUsuarioInput struct {
	IDRealizaEncuesta FlexID  `json:"id_realiza_encuesta" validate:"required"`
	IDPregunta        uint    `json:"id_pregunta" validate:"required,gt=0"`
	IDRespuesta       *uint   `json:"id_respuesta"`
	RespuestaTexto    *string `json:"respuesta_texto"`
}

// RespuestasBatchRequest: lote completo de respuestas de una corrida.
// El cliente manda el arreglo plano, sin envoltorio.
type RespuestasBatchRequest []RespuestaUsuarioInput
