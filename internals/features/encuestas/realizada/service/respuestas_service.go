package service

import (
	"fmt"
	"strings"
	"time"

	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	"uesquest_backend/internals/features/encuestas/realizada/dto"
	"uesquest_backend/internals/features/encuestas/realizada/model"
)

// BatchError: error de validación del lote con el índice del registro que falló.
type BatchError struct {
	Indice  int
	Mensaje string
}

func (e *BatchError) Error() string {
	if e.Indice < 0 {
		return e.Mensaje
	}
	return fmt.Sprintf("registro %d: %s", e.Indice, e.Mensaje)
}

// PreguntaInfo: lo mínimo que el lote necesita saber de cada pregunta.
type PreguntaInfo struct {
	ID   uint
	Tipo string
}

// BatchContexto: datos de la encuesta contra los que se valida el lote.
// OpcionPregunta mapea id de opción → id de la pregunta dueña.
type BatchContexto struct {
	IDRealizada    uint
	Preguntas      map[uint]PreguntaInfo
	OpcionPregunta map[uint]uint
}

// ConstruirLote valida el lote completo y lo convierte en filas listas para
// insertar. Todas las filas comparten el mismo timestamp. Reglas:
//
//  1. el lote no puede venir vacío
//  2. todas las respuestas pertenecen a la misma corrida (ctx.IDRealizada)
//  3. cada pregunta referida pertenece a la encuesta de la corrida
//  4. cada opción referida pertenece a su pregunta
//  5. id_respuesta y respuesta_texto no pueden ser ambos nulos
//  6. los tipos de selección única admiten a lo sumo una opción marcada
//     por pregunta; Multiple admite varias
func ConstruirLote(inputs dto.RespuestasBatchRequest, ctx BatchContexto) ([]model.RespuestaUsuario, error) {
	if len(inputs) == 0 {
		return nil, &BatchError{Indice: -1, Mensaje: "el lote de respuestas está vacío"}
	}

	ahora := time.Now()
	filas := make([]model.RespuestaUsuario, 0, len(inputs))
	opcionesPorPregunta := make(map[uint]int)

	for i, in := range inputs {
		if uint(in.IDRealizaEncuesta) != ctx.IDRealizada {
			return nil, &BatchError{Indice: i, Mensaje: "la respuesta no pertenece a esta corrida de encuesta"}
		}

		pregunta, ok := ctx.Preguntas[in.IDPregunta]
		if !ok {
			return nil, &BatchError{Indice: i, Mensaje: "la pregunta no pertenece a esta encuesta"}
		}

		texto := normalizarTexto(in.RespuestaTexto)
		if in.IDRespuesta == nil && texto == nil {
			return nil, &BatchError{Indice: i, Mensaje: "la respuesta no tiene opción ni texto"}
		}

		if in.IDRespuesta != nil {
			dueña, ok := ctx.OpcionPregunta[*in.IDRespuesta]
			if !ok || dueña != in.IDPregunta {
				return nil, &BatchError{Indice: i, Mensaje: "la opción no pertenece a la pregunta"}
			}
			opcionesPorPregunta[in.IDPregunta]++
			if preguntaModel.EsSeleccionUnica(pregunta.Tipo) && opcionesPorPregunta[in.IDPregunta] > 1 {
				return nil, &BatchError{Indice: i, Mensaje: "la pregunta solo admite una opción marcada"}
			}
		}

		filas = append(filas, model.RespuestaUsuario{
			IDRealizaEncuesta: ctx.IDRealizada,
			IDPregunta:        in.IDPregunta,
			IDRespuesta:       in.IDRespuesta,
			RespuestaTexto:    texto,
			CreatedAt:         ahora,
			UpdatedAt:         ahora,
		})
	}

	return filas, nil
}

// normalizarTexto recorta espacios y trata el texto en blanco como nulo.
func normalizarTexto(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}
