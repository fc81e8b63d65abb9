package dto

// UsuarioCreateRequest: alta de usuario (admin o autoservicio).
type UsuarioCreateRequest struct {
	Nombre    string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido  string `json:"apellido" validate:"required,min=2,max=100"`
	Telefono  string `json:"telefono" validate:"omitempty,max=20"`
	Correo    string `json:"correo" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	IDRol     uint   `json:"id_rol" validate:"required,min=1"`
	CreatedBy *uint  `json:"created_by"`
}

// UsuarioUpdateRequest: edición de datos de perfil (sin password).
type UsuarioUpdateRequest struct {
	Nombre   string `json:"nombre" validate:"required,min=2,max=100"`
	Apellido string `json:"apellido" validate:"required,min=2,max=100"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Correo   string `json:"correo" validate:"required,email"`
	IDRol    uint   `json:"id_rol" validate:"required,min=1"`
}

// CambiarPasswordRequest: cambio de contraseña por admin o por el dueño.
type CambiarPasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}
