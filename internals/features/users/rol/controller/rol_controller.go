package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	"uesquest_backend/internals/features/users/rol/model"
	helper "uesquest_backend/internals/helpers"
)

type RolController struct {
	DB *gorm.DB
}

func NewRolController(db *gorm.DB) *RolController {
	return &RolController{DB: db}
}

// ✅ GetAll devuelve todos los roles ordenados por id.
func (ctrl *RolController) GetAll(c *fiber.Ctx) error {
	var roles []model.Rol
	if err := ctrl.DB.Order("id ASC").Find(&roles).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los roles")
	}
	return c.JSON(roles)
}

// ✅ Create registra un rol nuevo y actualiza el mapa nombre→id.
func (ctrl *RolController) Create(c *fiber.Ctx) error {
	var payload model.Rol
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if payload.Rol == "" {
		return helper.Error(c, fiber.StatusBadRequest, "El nombre del rol es obligatorio")
	}

	if err := ctrl.DB.Create(&payload).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el rol")
	}

	constants.SetRolID(payload.Rol, payload.ID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Rol creado", payload)
}

// ✅ Update modifica el nombre del rol.
func (ctrl *RolController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var rol model.Rol
	if err := ctrl.DB.First(&rol, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Rol no encontrado")
	}

	var payload model.Rol
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if payload.Rol == "" {
		return helper.Error(c, fiber.StatusBadRequest, "El nombre del rol es obligatorio")
	}

	rol.Rol = payload.Rol
	if err := ctrl.DB.Save(&rol).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el rol")
	}

	constants.SetRolID(rol.Rol, rol.ID)
	return c.JSON(rol)
}

// ✅ Delete elimina un rol. Falla si hay usuarios que lo usan.
func (ctrl *RolController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var enUso int64
	if err := ctrl.DB.Table("usuarios").Where("id_rol = ?", id).Count(&enUso).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar el rol")
	}
	if enUso > 0 {
		return helper.Error(c, fiber.StatusConflict, "No se puede eliminar: hay usuarios con este rol")
	}

	if err := ctrl.DB.Delete(&model.Rol{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el rol")
	}
	return helper.Success(c, "Rol eliminado correctamente", nil)
}
