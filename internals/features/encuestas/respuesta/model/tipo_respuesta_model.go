package model

import (
	"time"

	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
)

// TipoRespuesta: opción de respuesta que pertenece a una pregunta.
type TipoRespuesta struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Respuesta  string    `gorm:"column:respuesta;type:text;not null" json:"respuesta"`
	Correcta   bool      `gorm:"column:correcta;not null;default:false" json:"correcta"`
	Orden      int       `gorm:"column:orden;not null;default:0" json:"orden"`
	IDPregunta uint      `gorm:"column:id_pregunta;not null;index" json:"id_pregunta"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Pregunta *preguntaModel.PreguntaBase `gorm:"foreignKey:IDPregunta;constraint:OnDelete:CASCADE" json:"pregunta,omitempty"`
}

func (TipoRespuesta) TableName() string {
	return "tipo_respuesta"
}
