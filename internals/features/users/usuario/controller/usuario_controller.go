package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	authHelper "uesquest_backend/internals/features/users/auth/helper"
	"uesquest_backend/internals/features/users/usuario/dto"
	"uesquest_backend/internals/features/users/usuario/model"
	helper "uesquest_backend/internals/helpers"
)

type UsuarioController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewUsuarioController(db *gorm.DB) *UsuarioController {
	return &UsuarioController{
		DB:       db,
		Validate: validator.New(),
	}
}

// ✅ GetAll devuelve los usuarios activos. Sin params de paginación responde
// el arreglo plano completo; con ?page/?per_page responde {data, pagination}.
func (ctrl *UsuarioController) GetAll(c *fiber.Ctx) error {
	if helper.WantsPaging(c) {
		paging := helper.ResolvePaging(c, 20, 100)

		var total int64
		if err := ctrl.DB.Model(&model.Usuario{}).Where("estado = true").Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
		}

		var usuarios []model.Usuario
		if err := ctrl.DB.Where("estado = true").Order("id ASC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&usuarios).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
		}
		return c.JSON(fiber.Map{
			"data":       usuarios,
			"pagination": helper.BuildPagination(total, paging),
		})
	}

	var usuarios []model.Usuario
	if err := ctrl.DB.Where("estado = true").Order("id ASC").Find(&usuarios).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
	}
	return c.JSON(usuarios)
}

// ✅ EstadoUsuarios devuelve todos los usuarios, activos e inhabilitados.
func (ctrl *UsuarioController) EstadoUsuarios(c *fiber.Ctx) error {
	var usuarios []model.Usuario
	if err := ctrl.DB.Order("id ASC").Find(&usuarios).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los usuarios")
	}
	return c.JSON(usuarios)
}

// ✅ Me devuelve el perfil del usuario autenticado.
func (ctrl *UsuarioController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var usuario model.Usuario
	if err := ctrl.DB.First(&usuario, "id = ?", userID).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return c.JSON(usuario)
}

// ✅ Create registra un usuario nuevo (flujo admin).
func (ctrl *UsuarioController) Create(c *fiber.Ctx) error {
	var input dto.UsuarioCreateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo hashear la contraseña")
	}

	usuario := model.Usuario{
		Nombre:    input.Nombre,
		Apellido:  input.Apellido,
		Telefono:  input.Telefono,
		Correo:    strings.TrimSpace(input.Correo),
		Password:  hashed,
		IDRol:     input.IDRol,
		Estado:    true,
		CreatedBy: input.CreatedBy,
	}
	if err := ctrl.DB.Create(&usuario).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "El correo ya está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuario creado", usuario)
}

// ✅ CreateUsuario: alta de autoservicio (rol usuario por defecto).
func (ctrl *UsuarioController) CreateUsuario(c *fiber.Ctx) error {
	var input dto.UsuarioCreateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if input.IDRol == 0 {
		input.IDRol = constants.RolID(constants.RolUsuario)
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo hashear la contraseña")
	}

	creadorID, _ := helper.GetUserIDFromToken(c)
	usuario := model.Usuario{
		Nombre:   input.Nombre,
		Apellido: input.Apellido,
		Telefono: input.Telefono,
		Correo:   strings.TrimSpace(input.Correo),
		Password: hashed,
		IDRol:    input.IDRol,
		Estado:   true,
	}
	if creadorID != 0 {
		usuario.CreatedBy = &creadorID
	}

	if err := ctrl.DB.Create(&usuario).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusBadRequest, "El correo ya está registrado")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el usuario")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Usuario registrado", usuario)
}

// ✅ Update modifica los datos de un usuario (flujo admin).
func (ctrl *UsuarioController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var usuario model.Usuario
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	var input dto.UsuarioUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	usuario.Nombre = input.Nombre
	usuario.Apellido = input.Apellido
	usuario.Telefono = input.Telefono
	usuario.Correo = strings.TrimSpace(input.Correo)
	usuario.IDRol = input.IDRol

	if err := ctrl.DB.Save(&usuario).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el usuario")
	}
	return c.JSON(usuario)
}

// ✅ UpdateUsuario: edición de perfil propio (no cambia rol).
func (ctrl *UsuarioController) UpdateUsuario(c *fiber.Ctx) error {
	id := c.Params("id")
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var usuario model.Usuario
	if err := ctrl.DB.First(&usuario, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	if usuario.ID != userID {
		rol, _ := helper.GetRolFromToken(c)
		if rol != constants.RolAdmin {
			return helper.Error(c, fiber.StatusForbidden, "Solo puede editar su propio perfil")
		}
	}

	var input dto.UsuarioUpdateRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	// rol no editable en este flujo
	input.IDRol = usuario.IDRol
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	usuario.Nombre = input.Nombre
	usuario.Apellido = input.Apellido
	usuario.Telefono = input.Telefono
	usuario.Correo = strings.TrimSpace(input.Correo)

	if err := ctrl.DB.Save(&usuario).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el perfil")
	}
	return c.JSON(usuario)
}

// ✅ Inhabilitar desactiva la cuenta (soft disable, no borra filas).
func (ctrl *UsuarioController) Inhabilitar(c *fiber.Ctx) error {
	return ctrl.cambiarEstado(c, false, "Usuario inhabilitado")
}

// ✅ Restaurar reactiva una cuenta inhabilitada.
func (ctrl *UsuarioController) Restaurar(c *fiber.Ctx) error {
	return ctrl.cambiarEstado(c, true, "Usuario restaurado")
}

func (ctrl *UsuarioController) cambiarEstado(c *fiber.Ctx, estado bool, msg string) error {
	id := c.Params("id")
	res := ctrl.DB.Model(&model.Usuario{}).Where("id = ?", id).Update("estado", estado)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cambiar el estado")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.Success(c, msg, nil)
}

// ✅ CambiarPassword actualiza la contraseña de un usuario.
func (ctrl *UsuarioController) CambiarPassword(c *fiber.Ctx) error {
	id := c.Params("id")

	var input dto.CambiarPasswordRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo hashear la contraseña")
	}

	res := ctrl.DB.Model(&model.Usuario{}).Where("id = ?", id).Update("password", hashed)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}
	return helper.Success(c, "Contraseña actualizada correctamente", nil)
}

// ✅ Delete elimina definitivamente un usuario.
func (ctrl *UsuarioController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.Usuario{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el usuario")
	}
	return helper.Success(c, "Usuario eliminado correctamente", nil)
}
