package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/encuestas/pregunta/model"
	helper "uesquest_backend/internals/helpers"
)

type TipoPreguntaController struct {
	DB *gorm.DB
}

func NewTipoPreguntaController(db *gorm.DB) *TipoPreguntaController {
	return &TipoPreguntaController{DB: db}
}

// ✅ GetAll devuelve el catálogo de tipos de pregunta.
// El catálogo se mantiene por seeds, no hay alta desde la API.
func (ctrl *TipoPreguntaController) GetAll(c *fiber.Ctx) error {
	var tipos []model.TipoPregunta
	if err := ctrl.DB.Order("id ASC").Find(&tipos).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudieron obtener los tipos de pregunta")
	}
	return c.JSON(tipos)
}
