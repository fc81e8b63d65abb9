package database

import (
	"log"

	encuestaModel "uesquest_backend/internals/features/encuestas/encuesta/model"
	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	realizadaModel "uesquest_backend/internals/features/encuestas/realizada/model"
	respuestaModel "uesquest_backend/internals/features/encuestas/respuesta/model"
	grupoMetaModel "uesquest_backend/internals/features/grupos/grupo_meta/model"
	grupoUsuarioModel "uesquest_backend/internals/features/grupos/grupo_usuario/model"
	authModel "uesquest_backend/internals/features/users/auth/model"
	rolModel "uesquest_backend/internals/features/users/rol/model"
	usuarioModel "uesquest_backend/internals/features/users/usuario/model"
)

// MigrateAll sincroniza el esquema. El orden respeta las FKs.
func MigrateAll() {
	err := DB.AutoMigrate(
		&rolModel.Rol{},
		&usuarioModel.Usuario{},
		&authModel.TokenBlacklist{},
		&grupoMetaModel.GrupoMeta{},
		&grupoUsuarioModel.GrupoUsuario{},
		&encuestaModel.Encuesta{},
		&preguntaModel.TipoPregunta{},
		&preguntaModel.PreguntaBase{},
		&respuestaModel.TipoRespuesta{},
		&realizadaModel.EncuestaRealizada{},
		&realizadaModel.RespuestaUsuario{},
	)
	if err != nil {
		log.Fatalf("❌ Error en migraciones: %v", err)
	}

	// CHECK que respalda el invariante del modelo: una respuesta siempre
	// tiene opción o texto.
	err = DB.Exec(`
		ALTER TABLE respuestas_usuario
		DROP CONSTRAINT IF EXISTS chk_respuesta_no_vacia;
	`).Error
	if err == nil {
		err = DB.Exec(`
			ALTER TABLE respuestas_usuario
			ADD CONSTRAINT chk_respuesta_no_vacia
			CHECK (id_respuesta IS NOT NULL OR respuesta_texto IS NOT NULL);
		`).Error
	}
	if err != nil {
		log.Printf("[WARN] constraint chk_respuesta_no_vacia: %v", err)
	}

	log.Println("✅ Migraciones aplicadas.")
}
