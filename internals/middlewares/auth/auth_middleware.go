// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"uesquest_backend/internals/configs"
	authModel "uesquest_backend/internals/features/users/auth/model"
)

// AuthMiddleware valida el Bearer token: firma, expiración, blacklist y
// usuario activo. Cualquier token ausente/inválido/expirado responde 401 —
// ese es el contrato que el cliente usa para cerrar la sesión.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Tomar Authorization (o cookie)
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// 2) Revisar blacklist (una vez por request)
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklist
			if err := db.Where("token = ? AND deleted_at IS NULL", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token encontrado en blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token revocado")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] Error de DB consultando blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		// 3) Parsear y verificar JWT
		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("método de firma inesperado")
			}
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] No se pudo parsear el token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token inválido")
		}

		// 4) Validar exp
		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Validación de exp:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expirado")
		}

		// 5) user_id + usuario activo
		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user_id inválido o ausente")
		}
		c.Locals("user_id", userID)
		c.Locals("token_string", tokenString)
		c.Locals("token_exp", extractExpiry(claims))

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Usuario no encontrado")
			}
			return fiber.NewError(fiber.StatusForbidden, "Su cuenta ha sido deshabilitada")
		}

		// 6) Guardar claims útiles en el context (rol, correo)
		storeBasicClaimsToLocals(c, claims)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", errors.New("Unauthorized - Formato de Authorization inválido")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	// fallback: cookie (misma sesión del navegador)
	if tok := c.Cookies("auth_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Falta el token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return errors.New("claim exp ausente")
	}
	if time.Now().After(time.Unix(int64(exp), 0).Add(leeway)) {
		return errors.New("token expirado")
	}
	return nil
}

func extractExpiry(claims jwt.MapClaims) time.Time {
	if exp, ok := claims["exp"].(float64); ok {
		return time.Unix(int64(exp), 0)
	}
	return time.Now().Add(24 * time.Hour)
}

func extractUserID(claims jwt.MapClaims) (uint, error) {
	v, ok := claims["user_id"]
	if !ok {
		return 0, errors.New("claim user_id ausente")
	}
	f, ok := v.(float64)
	if !ok || f <= 0 {
		return 0, errors.New("claim user_id inválido")
	}
	return uint(f), nil
}

func ensureUserActive(db *gorm.DB, userID uint) error {
	var estado bool
	err := db.Table("usuarios").Select("estado").Where("id = ?", userID).Take(&estado).Error
	if err != nil {
		return err
	}
	if !estado {
		return errors.New("usuario deshabilitado")
	}
	return nil
}

func storeBasicClaimsToLocals(c *fiber.Ctx, claims jwt.MapClaims) {
	if rol, ok := claims["rol"].(string); ok {
		c.Locals("rol", rol)
	}
	if idRol, ok := claims["id_rol"].(float64); ok {
		c.Locals("id_rol", uint(idRol))
	}
	if correo, ok := claims["correo"].(string); ok {
		c.Locals("correo", correo)
	}
}
