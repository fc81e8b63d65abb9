package constants

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"gorm.io/gorm"
)

// Nombres de rol conocidos por la aplicación
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"
)

// IDs por defecto (se sobreescriben con lo que exista en la tabla roles)
const (
	DefaultRolAdminID   uint = 1
	DefaultRolUsuarioID uint = 2
)

// Template de mensajes de error por rol
const (
	ErrSoloAdmin        = "❌ Solo un administrador puede acceder a %s."
	ErrSoloAutenticados = "❌ Debe iniciar sesión para acceder a %s."
)

func RolErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrSoloAdmin, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	TodosLosRoles = []string{
		RolAdmin,
		RolUsuario,
	}

	SoloAdmin = []string{
		RolAdmin,
	}
)

/* ==========================
   Mapa rol → id (config-driven)
   Se inicializa con los defaults y se sincroniza contra la tabla
   roles al arrancar, para no depender de ids quemados en código.
========================== */

var (
	rolIDsMu sync.RWMutex
	rolIDs   = map[string]uint{
		RolAdmin:   DefaultRolAdminID,
		RolUsuario: DefaultRolUsuarioID,
	}
)

// RolID devuelve el id numérico del rol; 0 si el nombre no existe.
func RolID(nombre string) uint {
	rolIDsMu.RLock()
	defer rolIDsMu.RUnlock()
	return rolIDs[strings.ToLower(strings.TrimSpace(nombre))]
}

// NombreRol devuelve el nombre del rol dado su id; "" si no existe.
func NombreRol(id uint) string {
	rolIDsMu.RLock()
	defer rolIDsMu.RUnlock()
	for nombre, rid := range rolIDs {
		if rid == id {
			return nombre
		}
	}
	return ""
}

// SetRolID registra/actualiza una entrada del mapa (usado por el sync y los tests).
func SetRolID(nombre string, id uint) {
	nombre = strings.ToLower(strings.TrimSpace(nombre))
	if nombre == "" || id == 0 {
		return
	}
	rolIDsMu.Lock()
	rolIDs[nombre] = id
	rolIDsMu.Unlock()
}

// SyncRolIDs recarga el mapa desde la tabla roles. Llamar al arrancar,
// después de correr los seeds.
func SyncRolIDs(db *gorm.DB) {
	type fila struct {
		ID  uint
		Rol string
	}
	var filas []fila
	if err := db.Table("roles").Select("id", "rol").Scan(&filas).Error; err != nil {
		log.Printf("[WARN] No se pudo sincronizar el mapa de roles: %v", err)
		return
	}
	for _, f := range filas {
		SetRolID(f.Rol, f.ID)
	}
	log.Printf("[INFO] Mapa de roles sincronizado (%d roles)", len(filas))
}
