package service

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authHelper "uesquest_backend/internals/features/users/auth/helper"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
	helper "uesquest_backend/internals/helpers"
)

// ========================== FORGOT / RESET PASSWORD ==========================
func ResetPassword(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Correo      string `json:"correo"`
		NewPassword string `json:"new_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}

	if err := authHelper.ValidateResetPassword(input.Correo, input.NewPassword); err != nil {
		return helper.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	var usuario usuarioModel.Usuario
	if err := db.Where("correo = ?", input.Correo).First(&usuario).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo hashear la contraseña")
	}

	if err := db.Model(&usuarioModel.Usuario{}).
		Where("id = ?", usuario.ID).
		Update("password", string(hashedPassword)).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "No se pudo actualizar la contraseña")
	}

	return helper.Success(c, "Contraseña restablecida correctamente", nil)
}
