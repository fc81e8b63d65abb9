package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"uesquest_backend/internals/configs"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

const accessTTLDefault = 24 * time.Hour

// CreateAccessToken firma un JWT HS256 con los claims que consumen el
// middleware de auth y el guard de roles.
func CreateAccessToken(usuario *usuarioModel.Usuario, rol string) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET no configurado")
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user_id": usuario.ID,
		"correo":  usuario.Correo,
		"rol":     rol,
		"id_rol":  usuario.IDRol,
		"jti":     uuid.NewString(),
		"iat":     now.Unix(),
		"exp":     now.Add(accessTTLDefault).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo firmar el token")
	}
	return signed, nil
}

// ParseAccessToken valida firma y devuelve los claims (para tests y logout).
func ParseAccessToken(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}
