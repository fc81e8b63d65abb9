package model

import "time"

type Rol struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Rol       string    `gorm:"column:rol;size:50;not null;unique" json:"rol"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Rol) TableName() string {
	return "roles"
}
