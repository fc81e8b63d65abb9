package model

import "time"

type GrupoMeta struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre      string    `gorm:"column:nombre;size:150;not null" json:"nombre"`
	Descripcion string    `gorm:"column:descripcion;type:text" json:"descripcion"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (GrupoMeta) TableName() string {
	return "grupo_meta"
}
