package model

import "time"

type Usuario struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nombre    string    `gorm:"column:nombre;size:100;not null" json:"nombre"`
	Apellido  string    `gorm:"column:apellido;size:100;not null" json:"apellido"`
	Telefono  string    `gorm:"column:telefono;size:20" json:"telefono"`
	Correo    string    `gorm:"column:correo;size:150;not null;unique" json:"correo"`
	Password  string    `gorm:"column:password;type:text;not null" json:"-"`
	IDRol     uint      `gorm:"column:id_rol;not null;index" json:"id_rol"`
	Estado    bool      `gorm:"column:estado;not null;default:true" json:"estado"`
	CreatedBy *uint     `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}
