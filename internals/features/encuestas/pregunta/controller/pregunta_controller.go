package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/encuestas/pregunta/dto"
	"uesquest_backend/internals/features/encuestas/pregunta/model"
	helper "uesquest_backend/internals/helpers"
)

type PreguntaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPreguntaController(db *gorm.DB) *PreguntaController {
	return &PreguntaController{DB: db, Validate: validator.New()}
}

// ✅ GetAll lista todas las preguntas con su tipo.
func (ctrl *PreguntaController) GetAll(c *fiber.Ctx) error {
	var preguntas []model.PreguntaBase
	if err := ctrl.DB.
		Preload("TipoPregunta").
		Order("id ASC").
		Find(&preguntas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las preguntas")
	}
	return c.JSON(preguntas)
}

// ✅ PorEncuesta lista las preguntas de una encuesta con su tipo y sus opciones.
func (ctrl *PreguntaController) PorEncuesta(c *fiber.Ctx) error {
	idEncuesta, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identificador de encuesta inválido")
	}

	var preguntas []model.PreguntaBase
	if err := ctrl.DB.
		Preload("TipoPregunta").
		Where("id_encuesta = ?", idEncuesta).
		Order("id ASC").
		Find(&preguntas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las preguntas")
	}
	return c.JSON(preguntas)
}

// ✅ Create registra una pregunta nueva en una encuesta.
func (ctrl *PreguntaController) Create(c *fiber.Ctx) error {
	var input dto.PreguntaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	// 1) La encuesta destino debe existir.
	var existe int64
	if err := ctrl.DB.Table("encuestas").Where("id = ?", input.IDEncuesta).Count(&existe).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la encuesta")
	}
	if existe == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
	}

	// 2) El tipo de pregunta debe pertenecer al catálogo.
	if err := ctrl.DB.Table("tipo_pregunta").Where("id = ?", input.IDTipoPregunta).Count(&existe).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar el tipo de pregunta")
	}
	if existe == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Tipo de pregunta inválido")
	}

	pregunta := model.PreguntaBase{
		Pregunta:       input.Pregunta,
		IDTipoPregunta: input.IDTipoPregunta,
		Ponderacion:    input.Ponderacion,
		IDEncuesta:     input.IDEncuesta,
	}
	if err := ctrl.DB.Create(&pregunta).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la pregunta")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Pregunta creada", pregunta)
}

// ✅ Update modifica una pregunta. Cambiar el tipo no borra opciones:
// el cliente decide qué opciones conservar.
func (ctrl *PreguntaController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var pregunta model.PreguntaBase
	if err := ctrl.DB.First(&pregunta, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pregunta no encontrada")
	}

	var input dto.PreguntaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var existe int64
	if err := ctrl.DB.Table("tipo_pregunta").Where("id = ?", input.IDTipoPregunta).Count(&existe).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar el tipo de pregunta")
	}
	if existe == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "Tipo de pregunta inválido")
	}

	pregunta.Pregunta = input.Pregunta
	pregunta.IDTipoPregunta = input.IDTipoPregunta
	pregunta.Ponderacion = input.Ponderacion
	if err := ctrl.DB.Save(&pregunta).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la pregunta")
	}
	return c.JSON(pregunta)
}

// ✅ Delete elimina una pregunta y sus opciones.
func (ctrl *PreguntaController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	var pregunta model.PreguntaBase
	if err := ctrl.DB.First(&pregunta, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Pregunta no encontrada")
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM tipo_respuesta WHERE id_pregunta = ?", pregunta.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.PreguntaBase{}, "id = ?", pregunta.ID).Error
	})
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la pregunta")
	}
	return helper.Success(c, "Pregunta eliminada correctamente", nil)
}
