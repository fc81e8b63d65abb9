package dto

type GrupoMetaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=2,max=150"`
	Descripcion string `json:"descripcion" validate:"omitempty,max=500"`
}
