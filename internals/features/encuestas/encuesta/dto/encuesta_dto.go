package dto

import (
	"time"

	"gorm.io/datatypes"

	respuestaModel "uesquest_backend/internals/features/encuestas/respuesta/model"
)

// EncuestaRequest: alta/edición de encuesta. Las fechas viajan como
// 'YYYY-MM-DD' (mismo formato que usa el formulario).
type EncuestaRequest struct {
	Titulo      string `json:"titulo" validate:"required,min=3,max=200"`
	Objetivo    string `json:"objetivo" validate:"required"`
	Indicacion  string `json:"indicacion" validate:"required"`
	FechaInicio string `json:"fecha_inicio" validate:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin" validate:"required,datetime=2006-01-02"`
	IDGrupo     uint   `json:"id_grupo" validate:"required,min=1"`
	IDUsuario   uint   `json:"id_usuario"`
}

func (r EncuestaRequest) Fechas() (datatypes.Date, datatypes.Date, error) {
	inicio, err := time.Parse("2006-01-02", r.FechaInicio)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	fin, err := time.Parse("2006-01-02", r.FechaFin)
	if err != nil {
		return datatypes.Date{}, datatypes.Date{}, err
	}
	return datatypes.Date(inicio), datatypes.Date(fin), nil
}

/* ===============================
   Formulario de respuesta
=================================*/

// TipoPreguntaLite: lo que el formulario necesita del tipo.
type TipoPreguntaLite struct {
	ID           uint   `json:"id"`
	TipoPregunta string `json:"tipo_pregunta"`
	Indicacion   string `json:"indicacion"`
}

// PreguntaForm: pregunta con su tipo y sus opciones, lista para renderizar.
// tipo_preguntas viaja como arreglo por compatibilidad con el cliente.
type PreguntaForm struct {
	ID             uint                           `json:"id"`
	Pregunta       string                         `json:"pregunta"`
	IDTipoPregunta uint                           `json:"id_tipo_pregunta"`
	Ponderacion    float64                        `json:"ponderacion"`
	TipoPreguntas  []TipoPreguntaLite             `json:"tipo_preguntas"`
	TipoRespuestas []respuestaModel.TipoRespuesta `json:"tipo_respuestas"`
}

// EncuestaFormResponse: encabezado de encuesta + preguntas ordenadas.
type EncuestaFormResponse struct {
	ID         uint           `json:"id"`
	Titulo     string         `json:"titulo"`
	Objetivo   string         `json:"objetivo"`
	Indicacion string         `json:"indicacion"`
	Preguntas  []PreguntaForm `json:"preguntas"`
}

/* ===============================
   Datos agregados para gráficos
=================================*/

type RespuestaConteo struct {
	ID        uint   `json:"id"`
	Respuesta string `json:"respuesta"`
	Correcta  bool   `json:"correcta"`
	Total     int64  `json:"total"`
}

type PreguntaDatos struct {
	ID         uint              `json:"id"`
	Pregunta   string            `json:"pregunta"`
	Tipo       string            `json:"tipo"`
	Respuestas []RespuestaConteo `json:"respuestas"`
}

type EncuestaDatosResponse struct {
	ID            uint            `json:"id"`
	Titulo        string          `json:"titulo"`
	Objetivo      string          `json:"objetivo"`
	Indicacion    string          `json:"indicacion"`
	Participantes int64           `json:"participantes"`
	Preguntas     []PreguntaDatos `json:"preguntas"`
}
