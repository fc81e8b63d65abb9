package model

import (
	"time"

	encuestaModel "uesquest_backend/internals/features/encuestas/encuesta/model"
)

// PreguntaBase: pregunta que pertenece a una encuesta.
type PreguntaBase struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Pregunta       string    `gorm:"column:pregunta;type:text;not null" json:"pregunta"`
	IDTipoPregunta uint      `gorm:"column:id_tipo_pregunta;not null;index" json:"id_tipo_pregunta"`
	Ponderacion    float64   `gorm:"column:ponderacion;type:numeric(6,2);not null;default:0" json:"ponderacion"`
	IDEncuesta     uint      `gorm:"column:id_encuesta;not null;index" json:"id_encuesta"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	TipoPregunta *TipoPregunta           `gorm:"foreignKey:IDTipoPregunta" json:"tipo_pregunta,omitempty"`
	Encuesta     *encuestaModel.Encuesta `gorm:"foreignKey:IDEncuesta;constraint:OnDelete:CASCADE" json:"encuesta,omitempty"`
}

func (PreguntaBase) TableName() string {
	return "pregunta_base"
}
