package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/grupos/grupo_meta/dto"
	"uesquest_backend/internals/features/grupos/grupo_meta/model"
	helper "uesquest_backend/internals/helpers"
)

type GrupoMetaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewGrupoMetaController(db *gorm.DB) *GrupoMetaController {
	return &GrupoMetaController{DB: db, Validate: validator.New()}
}

// ✅ GetAll devuelve todos los grupos meta.
func (ctrl *GrupoMetaController) GetAll(c *fiber.Ctx) error {
	var grupos []model.GrupoMeta
	if err := ctrl.DB.Order("id ASC").Find(&grupos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los grupos")
	}
	return c.JSON(grupos)
}

// ✅ Create registra un grupo meta nuevo.
func (ctrl *GrupoMetaController) Create(c *fiber.Ctx) error {
	var input dto.GrupoMetaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo := model.GrupoMeta{Nombre: input.Nombre, Descripcion: input.Descripcion}
	if err := ctrl.DB.Create(&grupo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear el grupo")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Grupo creado", grupo)
}

// ✅ Update modifica un grupo meta.
func (ctrl *GrupoMetaController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var grupo model.GrupoMeta
	if err := ctrl.DB.First(&grupo, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Grupo no encontrado")
	}

	var input dto.GrupoMetaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	grupo.Nombre = input.Nombre
	grupo.Descripcion = input.Descripcion
	if err := ctrl.DB.Save(&grupo).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar el grupo")
	}
	return c.JSON(grupo)
}

// ✅ Delete elimina un grupo meta; sus membresías caen en cascada.
func (ctrl *GrupoMetaController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var encuestas int64
	if err := ctrl.DB.Table("encuestas").Where("id_grupo = ?", id).Count(&encuestas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar el grupo")
	}
	if encuestas > 0 {
		return helper.Error(c, fiber.StatusConflict, "No se puede eliminar: hay encuestas asignadas a este grupo")
	}

	if err := ctrl.DB.Delete(&model.GrupoMeta{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar el grupo")
	}
	return helper.Success(c, "Grupo eliminado correctamente", nil)
}
