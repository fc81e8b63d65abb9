package service

import (
	"github.com/lib/pq"
	"gorm.io/gorm"

	"uesquest_backend/internals/features/encuestas/encuesta/dto"
	encuestaModel "uesquest_backend/internals/features/encuestas/encuesta/model"
	preguntaModel "uesquest_backend/internals/features/encuestas/pregunta/model"
	respuestaModel "uesquest_backend/internals/features/encuestas/respuesta/model"
)

// ArmarFormulario junta encuesta + preguntas (con tipo y opciones) en el
// payload que consume el formulario dinámico de respuesta.
func ArmarFormulario(db *gorm.DB, idEncuesta uint) (*dto.EncuestaFormResponse, error) {
	var encuesta encuestaModel.Encuesta
	if err := db.First(&encuesta, "id = ?", idEncuesta).Error; err != nil {
		return nil, err
	}

	var preguntas []preguntaModel.PreguntaBase
	if err := db.
		Preload("TipoPregunta").
		Where("id_encuesta = ?", idEncuesta).
		Order("id ASC").
		Find(&preguntas).Error; err != nil {
		return nil, err
	}

	// una sola consulta para todas las opciones, agrupadas por pregunta
	preguntaIDs := make([]uint, 0, len(preguntas))
	for _, p := range preguntas {
		preguntaIDs = append(preguntaIDs, p.ID)
	}

	opcionesPorPregunta := map[uint][]respuestaModel.TipoRespuesta{}
	if len(preguntaIDs) > 0 {
		var opciones []respuestaModel.TipoRespuesta
		if err := db.
			Where("id_pregunta IN ?", preguntaIDs).
			Order("orden ASC, id ASC").
			Find(&opciones).Error; err != nil {
			return nil, err
		}
		for _, o := range opciones {
			opcionesPorPregunta[o.IDPregunta] = append(opcionesPorPregunta[o.IDPregunta], o)
		}
	}

	resp := &dto.EncuestaFormResponse{
		ID:         encuesta.ID,
		Titulo:     encuesta.Titulo,
		Objetivo:   encuesta.Objetivo,
		Indicacion: encuesta.Indicacion,
		Preguntas:  make([]dto.PreguntaForm, 0, len(preguntas)),
	}
	for _, p := range preguntas {
		pf := dto.PreguntaForm{
			ID:             p.ID,
			Pregunta:       p.Pregunta,
			IDTipoPregunta: p.IDTipoPregunta,
			Ponderacion:    p.Ponderacion,
			TipoRespuestas: opcionesPorPregunta[p.ID],
		}
		if pf.TipoRespuestas == nil {
			pf.TipoRespuestas = []respuestaModel.TipoRespuesta{}
		}
		if p.TipoPregunta != nil {
			pf.TipoPreguntas = []dto.TipoPreguntaLite{{
				ID:           p.TipoPregunta.ID,
				TipoPregunta: p.TipoPregunta.TipoPregunta,
				Indicacion:   p.TipoPregunta.Indicacion,
			}}
		}
		resp.Preguntas = append(resp.Preguntas, pf)
	}
	return resp, nil
}

// ArmarDatos agrega los conteos por opción de cada pregunta de la encuesta,
// para las vistas de gráficos. El conteo corre en una sola consulta.
func ArmarDatos(db *gorm.DB, idEncuesta uint) (*dto.EncuestaDatosResponse, error) {
	form, err := ArmarFormulario(db, idEncuesta)
	if err != nil {
		return nil, err
	}

	opcionIDs := make([]int64, 0)
	for _, p := range form.Preguntas {
		for _, o := range p.TipoRespuestas {
			opcionIDs = append(opcionIDs, int64(o.ID))
		}
	}

	conteos := map[uint]int64{}
	if len(opcionIDs) > 0 {
		type fila struct {
			ID    uint
			Total int64
		}
		var filas []fila
		if err := db.Raw(`
			SELECT ru.id_respuesta AS id, COUNT(*) AS total
			FROM respuestas_usuario ru
			WHERE ru.id_respuesta = ANY(?)
			GROUP BY ru.id_respuesta`,
			pq.Array(opcionIDs),
		).Scan(&filas).Error; err != nil {
			return nil, err
		}
		for _, f := range filas {
			conteos[f.ID] = f.Total
		}
	}

	var participantes int64
	if err := db.Table("encuesta_realizada").
		Where("id_encuesta = ?", idEncuesta).
		Count(&participantes).Error; err != nil {
		return nil, err
	}

	datos := &dto.EncuestaDatosResponse{
		ID:            form.ID,
		Titulo:        form.Titulo,
		Objetivo:      form.Objetivo,
		Indicacion:    form.Indicacion,
		Participantes: participantes,
		Preguntas:     make([]dto.PreguntaDatos, 0, len(form.Preguntas)),
	}
	for _, p := range form.Preguntas {
		pd := dto.PreguntaDatos{
			ID:         p.ID,
			Pregunta:   p.Pregunta,
			Respuestas: make([]dto.RespuestaConteo, 0, len(p.TipoRespuestas)),
		}
		if len(p.TipoPreguntas) > 0 {
			pd.Tipo = p.TipoPreguntas[0].TipoPregunta
		}
		for _, o := range p.TipoRespuestas {
			pd.Respuestas = append(pd.Respuestas, dto.RespuestaConteo{
				ID:        o.ID,
				Respuesta: o.Respuesta,
				Correcta:  o.Correcta,
				Total:     conteos[o.ID],
			})
		}
		datos.Preguntas = append(datos.Preguntas, pd)
	}
	return datos, nil
}
