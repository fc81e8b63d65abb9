package model

import (
	"time"

	grupoMetaModel "uesquest_backend/internals/features/grupos/grupo_meta/model"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

// GrupoUsuario: membresía usuario ↔ grupo meta
type GrupoUsuario struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	IDUsuario uint      `gorm:"column:id_usuario;not null;index;uniqueIndex:uq_grupo_usuario" json:"id_usuario"`
	IDGrupo   uint      `gorm:"column:id_grupo;not null;index;uniqueIndex:uq_grupo_usuario" json:"id_grupo"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Usuario *usuarioModel.Usuario    `gorm:"foreignKey:IDUsuario;constraint:OnDelete:CASCADE" json:"usuario,omitempty"`
	Grupo   *grupoMetaModel.GrupoMeta `gorm:"foreignKey:IDGrupo;constraint:OnDelete:CASCADE" json:"grupo,omitempty"`
}

func (GrupoUsuario) TableName() string {
	return "grupo_usuario"
}
