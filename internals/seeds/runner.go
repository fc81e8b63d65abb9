package seeds

import (
	"log"
	"os"

	"gorm.io/gorm"

	"uesquest_backend/internals/constants"
	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	authHelper "uesquest_backend/internals/features/users/auth/helper"
	rolModel "uesquest_backend/internals/features/users/rol/model"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

// RunAllSeeds deja los catálogos mínimos listos. Es idempotente:
// solo inserta lo que falta.
func RunAllSeeds(db *gorm.DB) {
	seedRoles(db)
	seedTiposPregunta(db)
	seedAdmin(db)
}

func seedRoles(db *gorm.DB) {
	roles := []rolModel.Rol{
		{ID: constants.DefaultRolAdminID, Rol: constants.RolAdmin},
		{ID: constants.DefaultRolUsuarioID, Rol: constants.RolUsuario},
	}
	for _, r := range roles {
		if err := db.Where("rol = ?", r.Rol).FirstOrCreate(&r).Error; err != nil {
			log.Printf("[ERROR] seed rol %q: %v", r.Rol, err)
		}
	}
}

func seedTiposPregunta(db *gorm.DB) {
	tipos := []preguntaModel.TipoPregunta{
		{TipoPregunta: preguntaModel.TipoDicotomica, Indicacion: "Seleccione una de las dos opciones."},
		{TipoPregunta: preguntaModel.TipoPolitomica, Indicacion: "Seleccione una opción."},
		{TipoPregunta: preguntaModel.TipoMultiple, Indicacion: "Seleccione todas las opciones que apliquen."},
		{TipoPregunta: preguntaModel.TipoRanking, Indicacion: "Seleccione la posición que mejor represente su criterio."},
		{TipoPregunta: preguntaModel.TipoEscala, Indicacion: "Seleccione un punto de la escala."},
		{TipoPregunta: preguntaModel.TipoLikert, Indicacion: "Seleccione su grado de acuerdo."},
		{TipoPregunta: preguntaModel.TipoNumerica, Indicacion: "Escriba un valor numérico."},
		{TipoPregunta: preguntaModel.TipoMixta, Indicacion: "Seleccione una opción o escriba su respuesta."},
	}
	for _, t := range tipos {
		if err := db.Where("tipo_pregunta = ?", t.TipoPregunta).FirstOrCreate(&t).Error; err != nil {
			log.Printf("[ERROR] seed tipo_pregunta %q: %v", t.TipoPregunta, err)
		}
	}
}

// seedAdmin crea la cuenta administradora inicial si se configuró por env.
func seedAdmin(db *gorm.DB) {
	correo := os.Getenv("SEED_ADMIN_CORREO")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if correo == "" || password == "" {
		return
	}

	var existe int64
	if err := db.Model(&usuarioModel.Usuario{}).Where("correo = ?", correo).Count(&existe).Error; err != nil || existe > 0 {
		return
	}

	hash, err := authHelper.HashPassword(password)
	if err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
		return
	}
	admin := usuarioModel.Usuario{
		Nombre:   "Administrador",
		Apellido: "UESQuest",
		Correo:   correo,
		Password: hash,
		IDRol:    constants.DefaultRolAdminID,
		Estado:   true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("[ERROR] seed admin: %v", err)
		return
	}
	log.Printf("[INFO] Cuenta admin inicial creada: %s", correo)
}
