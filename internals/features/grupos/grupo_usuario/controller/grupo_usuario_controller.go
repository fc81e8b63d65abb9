package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/grupos/grupo_usuario/model"
	helper "uesquest_backend/internals/helpers"
)

type GrupoUsuarioController struct {
	DB *gorm.DB
}

func NewGrupoUsuarioController(db *gorm.DB) *GrupoUsuarioController {
	return &GrupoUsuarioController{DB: db}
}

// ✅ GetAll devuelve las membresías con usuario y grupo precargados.
func (ctrl *GrupoUsuarioController) GetAll(c *fiber.Ctx) error {
	var membresias []model.GrupoUsuario
	if err := ctrl.DB.
		Preload("Usuario").
		Preload("Grupo").
		Order("id ASC").
		Find(&membresias).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las membresías")
	}
	return c.JSON(membresias)
}

// ✅ Create asigna un usuario a un grupo meta.
func (ctrl *GrupoUsuarioController) Create(c *fiber.Ctx) error {
	var payload model.GrupoUsuario
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if payload.IDUsuario == 0 || payload.IDGrupo == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "id_usuario e id_grupo son obligatorios")
	}

	if err := ctrl.DB.Create(&payload).Error; err != nil {
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.Error(c, fiber.StatusConflict, "El usuario ya pertenece a ese grupo")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la membresía")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Membresía creada", payload)
}

// ✅ Update cambia el usuario o el grupo de una membresía.
func (ctrl *GrupoUsuarioController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var membresia model.GrupoUsuario
	if err := ctrl.DB.First(&membresia, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Membresía no encontrada")
	}

	var payload model.GrupoUsuario
	if err := c.BodyParser(&payload); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if payload.IDUsuario == 0 || payload.IDGrupo == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "id_usuario e id_grupo son obligatorios")
	}

	membresia.IDUsuario = payload.IDUsuario
	membresia.IDGrupo = payload.IDGrupo
	if err := ctrl.DB.Save(&membresia).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la membresía")
	}
	return c.JSON(membresia)
}

// ✅ Delete quita al usuario del grupo.
func (ctrl *GrupoUsuarioController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.GrupoUsuario{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la membresía")
	}
	return helper.Success(c, "Membresía eliminada correctamente", nil)
}
