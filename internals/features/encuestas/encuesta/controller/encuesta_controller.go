package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/encuestas/encuesta/dto"
	"uesquest_backend/internals/features/encuestas/encuesta/model"
	"uesquest_backend/internals/features/encuestas/encuesta/service"
	helper "uesquest_backend/internals/helpers"
)

type EncuestaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewEncuestaController(db *gorm.DB) *EncuestaController {
	return &EncuestaController{DB: db, Validate: validator.New()}
}

// ✅ GetAll devuelve todas las encuestas. Sin params de paginación responde
// el arreglo plano completo; con ?page/?per_page responde {data, pagination}.
func (ctrl *EncuestaController) GetAll(c *fiber.Ctx) error {
	if helper.WantsPaging(c) {
		paging := helper.ResolvePaging(c, 20, 100)

		var total int64
		if err := ctrl.DB.Model(&model.Encuesta{}).Count(&total).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las encuestas")
		}

		var encuestas []model.Encuesta
		if err := ctrl.DB.Order("id DESC").
			Offset(paging.Offset).Limit(paging.Limit).
			Find(&encuestas).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las encuestas")
		}
		return c.JSON(fiber.Map{
			"data":       encuestas,
			"pagination": helper.BuildPagination(total, paging),
		})
	}

	var encuestas []model.Encuesta
	if err := ctrl.DB.Order("id DESC").Find(&encuestas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener las encuestas")
	}
	return c.JSON(encuestas)
}

// ✅ GetByID devuelve una encuesta por id.
func (ctrl *EncuestaController) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var encuesta model.Encuesta
	if err := ctrl.DB.First(&encuesta, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
	}
	return c.JSON(encuesta)
}

// ✅ Create registra una encuesta y la asigna a un grupo meta.
func (ctrl *EncuestaController) Create(c *fiber.Ctx) error {
	var input dto.EncuestaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if input.IDUsuario == 0 {
		if uid, err := helper.GetUserIDFromToken(c); err == nil {
			input.IDUsuario = uid
		}
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	inicio, fin, err := input.Fechas()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido (se espera YYYY-MM-DD)")
	}

	encuesta := model.Encuesta{
		Titulo:      input.Titulo,
		Objetivo:    input.Objetivo,
		Indicacion:  input.Indicacion,
		FechaInicio: inicio,
		FechaFin:    fin,
		IDGrupo:     input.IDGrupo,
		IDUsuario:   input.IDUsuario,
	}
	if err := ctrl.DB.Create(&encuesta).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo crear la encuesta")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Encuesta creada", encuesta)
}

// ✅ Update modifica una encuesta existente.
func (ctrl *EncuestaController) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var encuesta model.Encuesta
	if err := ctrl.DB.First(&encuesta, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
	}

	var input dto.EncuestaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	input.IDUsuario = encuesta.IDUsuario
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	inicio, fin, err := input.Fechas()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de fecha inválido (se espera YYYY-MM-DD)")
	}

	encuesta.Titulo = input.Titulo
	encuesta.Objetivo = input.Objetivo
	encuesta.Indicacion = input.Indicacion
	encuesta.FechaInicio = inicio
	encuesta.FechaFin = fin
	encuesta.IDGrupo = input.IDGrupo

	if err := ctrl.DB.Save(&encuesta).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la encuesta")
	}
	return c.JSON(encuesta)
}

// ✅ Delete elimina la encuesta; preguntas y opciones caen en cascada.
func (ctrl *EncuestaController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := ctrl.DB.Delete(&model.Encuesta{}, "id = ?", id).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo eliminar la encuesta")
	}
	return helper.Success(c, "Encuesta eliminada correctamente", nil)
}

// ✅ MisEncuestas: encuestas vigentes de los grupos del usuario que
// todavía no ha respondido.
func (ctrl *EncuestaController) MisEncuestas(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var encuestas []model.Encuesta
	if err := ctrl.DB.
		Joins("JOIN grupo_usuario gu ON gu.id_grupo = encuestas.id_grupo").
		Where("gu.id_usuario = ?", userID).
		Where("encuestas.fecha_fin >= CURRENT_DATE").
		Where(`encuestas.id NOT IN (
			SELECT er.id_encuesta
			FROM encuesta_realizada er
			JOIN respuestas_usuario ru ON ru.id_realiza_encuesta = er.id
			WHERE er.id_usuario = ?)`, userID).
		Order("encuestas.fecha_fin ASC").
		Find(&encuestas).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener sus encuestas")
	}
	return c.JSON(encuestas)
}

// ✅ Formulario: encuesta + preguntas con tipos y opciones (GET encuestaPreguntaForm/:id).
func (ctrl *EncuestaController) Formulario(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	form, err := service.ArmarFormulario(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo armar el formulario")
	}
	return c.JSON(form)
}

// ✅ Datos: conteos agregados por opción para las vistas de gráficos.
func (ctrl *EncuestaController) Datos(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "id inválido")
	}

	datos, err := service.ArmarDatos(ctrl.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los datos")
	}
	return c.JSON(datos)
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.ErrBadRequest
	}
	return uint(id), nil
}
