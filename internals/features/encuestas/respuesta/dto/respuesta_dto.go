package dto

// TipoRespuestaRequest: alta de una opción de respuesta para una pregunta.
type TipoRespuestaRequest struct {
	Respuesta  string `json:"respuesta" validate:"required,min=1"`
	Correcta   bool   `json:"correcta"`
	Orden      int    `json:"orden" validate:"gte=0"`
	IDPregunta uint   `json:"id_pregunta" validate:"required,gt=0"`
}
