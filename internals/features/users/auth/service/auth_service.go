package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	authHelper "uesquest_backend/internals/features/users/auth/helper"
	authModel "uesquest_backend/internals/features/users/auth/model"
	rolModel "uesquest_backend/internals/features/users/rol/model"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
	helpers "uesquest_backend/internals/helpers"
)

/* ==========================
   LOGIN (correo + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Correo   string `json:"correo"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, "Formato de entrada inválido")
	}
	input.Correo = strings.TrimSpace(input.Correo)

	if err := authHelper.ValidateLoginInput(input.Correo, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var usuario usuarioModel.Usuario
	if err := db.Where("correo = ?", input.Correo).First(&usuario).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// mismo mensaje para correo inexistente y password malo
			return helpers.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
		}
		log.Printf("[ERROR] Falla de DB buscando usuario: %v", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}
	if !usuario.Estado {
		return helpers.Error(c, fiber.StatusForbidden, "Su cuenta ha sido deshabilitada. Contacte al administrador.")
	}
	if err := authHelper.CheckPasswordHash(usuario.Password, input.Password); err != nil {
		return helpers.Error(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	rol := resolverNombreRol(db, usuario.IDRol)

	token, err := CreateAccessToken(&usuario, rol)
	if err != nil {
		log.Printf("[ERROR] No se pudo crear el token: %v", err)
		return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo iniciar sesión")
	}

	usuario.Password = ""
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token":   token,
		"usuario": usuario,
	})
}

// resolverNombreRol busca el nombre del rol en la tabla y cae al mapa
// config-driven si la consulta falla.
func resolverNombreRol(db *gorm.DB, idRol uint) string {
	var rol rolModel.Rol
	if err := db.First(&rol, "id = ?", idRol).Error; err == nil {
		return rol.Rol
	}
	if nombre := constants.NombreRol(idRol); nombre != "" {
		return nombre
	}
	return constants.RolUsuario
}

/* ==========================
   ME (perfil del token)
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var usuario usuarioModel.Usuario
	if err := db.First(&usuario, "id = ?", userID).Error; err != nil {
		return helpers.Error(c, fiber.StatusNotFound, "Usuario no encontrado")
	}

	usuario.Password = ""
	return c.JSON(usuario)
}

/* ==========================
   LOGOUT (blacklist del token)
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helpers.Error(c, fiber.StatusBadRequest, "No hay token que revocar")
	}

	exp, _ := c.Locals("token_exp").(time.Time)
	if exp.IsZero() {
		exp = time.Now().Add(accessTTLDefault)
	}

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: exp,
	}
	if err := db.Create(&entry).Error; err != nil {
		// token ya revocado cuenta como logout exitoso
		if !strings.Contains(strings.ToLower(err.Error()), "duplicate") &&
			!strings.Contains(strings.ToLower(err.Error()), "unique") {
			log.Printf("[ERROR] No se pudo guardar el token en blacklist: %v", err)
			return helpers.Error(c, fiber.StatusInternalServerError, "No se pudo cerrar sesión")
		}
	}

	return helpers.Success(c, "Sesión cerrada correctamente", nil)
}
