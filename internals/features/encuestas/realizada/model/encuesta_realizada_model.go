package model

import (
	"time"

	encuestaModel "uesquest_backend/internals/features/encuestas/encuesta/model"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

// EncuestaRealizada: un intento/corrida de encuesta por usuario.
type EncuestaRealizada struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDUsuario  uint      `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	IDEncuesta uint      `gorm:"column:id_encuesta;not null;index" json:"id_encuesta"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Usuario  *usuarioModel.Usuario   `gorm:"foreignKey:IDUsuario;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`
	Encuesta *encuestaModel.Encuesta `gorm:"foreignKey:IDEncuesta;constraint:OnDelete:CASCADE" json:"encuesta,omitempty"`
}

func (EncuestaRealizada) TableName() string {
	return "encuesta_realizada"
}
