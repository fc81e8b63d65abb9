package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	"uesquest_backend/internals/features/encuestas/realizada/dto"
	"uesquest_backend/internals/features/encuestas/realizada/model"
	"uesquest_backend/internals/features/encuestas/realizada/service"
	respuestaModel "uesquest_backend/internals/features/encuestas/respuesta/model"
	helper "uesquest_backend/internals/helpers"
)

type RealizadaController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewRealizadaController(db *gorm.DB) *RealizadaController {
	return &RealizadaController{DB: db, Validate: validator.New()}
}

// ✅ Create abre una corrida de encuesta para el usuario del token.
// Si el usuario ya respondió esa encuesta se rechaza con 409.
func (ctrl *RealizadaController) Create(c *fiber.Ctx) error {
	idUsuario, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var input dto.EncuestaRealizadaRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if err := ctrl.Validate.Struct(input); err != nil {
		return helper.ValidationError(c, err)
	}

	var existe int64
	if err := ctrl.DB.Table("encuestas").Where("id = ?", input.IDEncuesta).Count(&existe).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la encuesta")
	}
	if existe == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Encuesta no encontrada")
	}

	// Una corrida respondida por usuario y encuesta.
	var yaRespondio int64
	err = ctrl.DB.Table("encuesta_realizada er").
		Joins("JOIN respuestas_usuario ru ON ru.id_realiza_encuesta = er.id").
		Where("er.id_usuario = ? AND er.id_encuesta = ?", idUsuario, input.IDEncuesta).
		Count(&yaRespondio).Error
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la corrida")
	}
	if yaRespondio > 0 {
		return helper.Error(c, fiber.StatusConflict, "Ya respondiste esta encuesta")
	}

	realizada := model.EncuestaRealizada{
		IDUsuario:  idUsuario,
		IDEncuesta: input.IDEncuesta,
	}
	if err := ctrl.DB.Create(&realizada).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo abrir la corrida")
	}
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Encuesta iniciada", realizada)
}

// ✅ GetByID devuelve la corrida; el dueño o un admin pueden verla.
func (ctrl *RealizadaController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Identificador inválido")
	}

	var realizada model.EncuestaRealizada
	if err := ctrl.DB.Preload("Encuesta").First(&realizada, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Corrida no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener la corrida")
	}

	idUsuario, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	rol, _ := helper.GetRolFromToken(c)
	if realizada.IDUsuario != idUsuario && rol != constants.RolAdmin {
		return helper.Error(c, fiber.StatusForbidden, "No tienes acceso a esta corrida")
	}
	return c.JSON(realizada)
}

// ✅ SubmitRespuestas recibe el lote completo de respuestas de una corrida
// y lo inserta en una sola transacción: o entra todo o no entra nada.
func (ctrl *RealizadaController) SubmitRespuestas(c *fiber.Ctx) error {
	var inputs dto.RespuestasBatchRequest
	if err := c.BodyParser(&inputs); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Cuerpo de la petición inválido")
	}
	if len(inputs) == 0 {
		return helper.Error(c, fiber.StatusUnprocessableEntity, "El lote de respuestas está vacío")
	}

	idRealizada := uint(inputs[0].IDRealizaEncuesta)

	var realizada model.EncuestaRealizada
	if err := ctrl.DB.First(&realizada, "id = ?", idRealizada).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Corrida no encontrada")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo obtener la corrida")
	}

	idUsuario, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if realizada.IDUsuario != idUsuario {
		return helper.Error(c, fiber.StatusForbidden, "La corrida pertenece a otro usuario")
	}

	var yaTiene int64
	if err := ctrl.DB.Table("respuestas_usuario").Where("id_realiza_encuesta = ?", idRealizada).Count(&yaTiene).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo verificar la corrida")
	}
	if yaTiene > 0 {
		return helper.Error(c, fiber.StatusConflict, "La corrida ya tiene respuestas registradas")
	}

	ctx, err := ctrl.cargarContexto(realizada)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo cargar la encuesta")
	}

	filas, err := service.ConstruirLote(inputs, ctx)
	if err != nil {
		var batchErr *service.BatchError
		if errors.As(err, &batchErr) {
			return helper.Error(c, fiber.StatusUnprocessableEntity, batchErr.Error())
		}
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo procesar el lote")
	}

	if err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&filas).Error
	}); err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron guardar las respuestas")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Respuestas registradas", fiber.Map{
		"id_realiza_encuesta": idRealizada,
		"total":               len(filas),
	})
}

// cargarContexto arma preguntas y opciones de la encuesta de la corrida.
func (ctrl *RealizadaController) cargarContexto(realizada model.EncuestaRealizada) (service.BatchContexto, error) {
	ctx := service.BatchContexto{
		IDRealizada:    realizada.ID,
		Preguntas:      map[uint]service.PreguntaInfo{},
		OpcionPregunta: map[uint]uint{},
	}

	var preguntas []preguntaModel.PreguntaBase
	if err := ctrl.DB.
		Preload("TipoPregunta").
		Where("id_encuesta = ?", realizada.IDEncuesta).
		Find(&preguntas).Error; err != nil {
		return ctx, err
	}

	ids := make([]uint, 0, len(preguntas))
	for _, p := range preguntas {
		tipo := ""
		if p.TipoPregunta != nil {
			tipo = p.TipoPregunta.TipoPregunta
		}
		ctx.Preguntas[p.ID] = service.PreguntaInfo{ID: p.ID, Tipo: tipo}
		ids = append(ids, p.ID)
	}
	if len(ids) == 0 {
		return ctx, nil
	}

	var opciones []respuestaModel.TipoRespuesta
	if err := ctrl.DB.Where("id_pregunta IN ?", ids).Find(&opciones).Error; err != nil {
		return ctx, err
	}
	for _, o := range opciones {
		ctx.OpcionPregunta[o.ID] = o.IDPregunta
	}
	return ctx, nil
}
