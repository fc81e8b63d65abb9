package model

import (
	"time"

	"gorm.io/datatypes"
)

type Encuesta struct {
	ID          uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Titulo      string         `gorm:"column:titulo;size:200;not null" json:"titulo"`
	Objetivo    string         `gorm:"column:objetivo;type:text" json:"objetivo"`
	Indicacion  string         `gorm:"column:indicacion;type:text" json:"indicacion"`
	FechaInicio datatypes.Date `gorm:"column:fecha_inicio;not null" json:"fecha_inicio"`
	FechaFin    datatypes.Date `gorm:"column:fecha_fin;not null" json:"fecha_fin"`
	IDGrupo     uint           `gorm:"column:id_grupo;not null;index" json:"id_grupo"`
	IDUsuario   uint           `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Encuesta) TableName() string {
	return "encuestas"
}
