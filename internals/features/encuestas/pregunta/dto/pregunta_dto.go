package dto

// PreguntaRequest: alta y edición de preguntas de una encuesta.
type PreguntaRequest struct {
	Pregunta       string  `json:"pregunta" validate:"required,min=3"`
	IDTipoPregunta uint    `json:"id_tipo_pregunta" validate:"required,gt=0"`
	Ponderacion    float64 `json:"ponderacion" validate:"gte=0"`
	IDEncuesta     uint    `json:"id_encuesta" validate:"required,gt=0"`
}
