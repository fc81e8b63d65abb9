package helper

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var correoRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateLoginInput(correo, password string) error {
	if strings.TrimSpace(correo) == "" || strings.TrimSpace(password) == "" {
		return errors.New("correo y password son obligatorios")
	}
	if !correoRegex.MatchString(correo) {
		return errors.New("formato de correo inválido")
	}
	return nil
}

func ValidateResetPassword(correo, newPassword string) error {
	if !correoRegex.MatchString(correo) {
		return errors.New("formato de correo inválido")
	}
	return ValidatePassword(newPassword)
}

func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}
	return nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
