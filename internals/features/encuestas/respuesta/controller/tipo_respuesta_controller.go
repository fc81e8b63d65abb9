package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/encuestas/respuesta/dto"
	"uesquest_backend/internals/features/encuestas/respuesta/model"
	helper "uesquest_backend/internals/helpers"
)

type TipoRespuestaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewTipoRespuestaController(db *gorm.DB) *TipoRespuestaController {
	return &TipoRespuestaController{DB: db, Validate: validator.New()}
}

// ✅ PorPregunta lista las opciones de una pregunta ordenadas por "orden".
func (ctrl *TipoRespuestaController) PorPregunta(c *fiber.Ctx) error {
	idPregunta, err := strconv.ParseUint(c.Params("preguntaId"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identificador de pregunta inválido")
	}

	var opciones []model.TipoRespuesta
	if err := ctrl.DB.
		Where("id_pregunta = ?", idPregunta).
		Order("orden ASC, id ASC").
		Find(&opciones).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las opciones")
	}
	return c.JSON(opciones)
}

// ✅ Create registra una opción de respuesta para una pregunta existente.
func (ctrl *TipoRespuestaController) Create(c *fiber.Ctx) error {
	var input dto.TipoRespuestaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var existe int64
	if err := ctrl.DB.Table("pregunta_base").Where("id = ?", input.IDPregunta).Count(&existe).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la pregunta")
	}
	if existe == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Pregunta no encontrada")
	}

	opcion := model.TipoRespuesta{
		Respuesta:  input.Respuesta,
		Correcta:   input.Correcta,
		Orden:      input.Orden,
		IDPregunta: input.IDPregunta,
	}
	if err := ctrl.DB.Create(&opcion).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la opción")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Opción creada", opcion)
}

// ✅ Delete elimina una opción de respuesta.
// Si ya fue usada en respuestas de usuarios se rechaza con 409.
func (ctrl *TipoRespuestaController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var usos int64
	if err := ctrl.DB.Table("respuestas_usuario").Where("id_respuesta = ?", id).Count(&usos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la opción")
	}
	if usos > 0 {
		return helper.Error(c, fiber.StatusConflict, "No se puede eliminar: la opción ya tiene respuestas registradas")
	}

	res := ctrl.DB.Delete(&model.TipoRespuesta{}, "id = ?", id)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la opción")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Opción no encontrada")
	}
	return helper.Success(c, "Opción eliminada correctamente", nil)
}
