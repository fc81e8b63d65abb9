package model

import (
	"time"

	respuestaModel "uesquest_backend/internals/features/encuestas/respuesta/model"
)

// RespuestaUsuario: registro atómico de respuesta — una fila por opción
// marcada, o una fila con texto libre y opción nula. Invariante: id_respuesta
// y respuesta_texto nunca son ambos nulos (hay CHECK en la tabla).
type RespuestaUsuario struct {
	ID                uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDRealizaEncuesta uint      `gorm:"column:id_realiza_encuesta;not null;index" json:"id_realiza_encuesta"`
	IDPregunta        uint      `gorm:"column:id_pregunta;not null;index" json:"id_pregunta"`
	IDRespuesta       *uint     `gorm:"column:id_respuesta;index" json:"id_respuesta"`
	RespuestaTexto    *string   `gorm:"column:respuesta_texto;type:text" json:"respuesta_texto"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at" json:"updated_at"`

	Realizada *EncuestaRealizada            `gorm:"foreignKey:IDRealizaEncuesta;constraint:OnDelete:CASCADE" json:"realizada,omitempty"`
	Opcion    *respuestaModel.TipoRespuesta `gorm:"foreignKey:IDRespuesta" json:"opcion,omitempty"`
}

func (RespuestaUsuario) TableName() string {
	return "respuestas_usuario"
}
