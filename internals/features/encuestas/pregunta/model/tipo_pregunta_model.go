package model

// Catálogo cerrado de tipos de pregunta (se llena con los seeds).
const (
	TipoDicotomica = "Dicotómica"
	TipoPolitomica = "Polítomica"
	TipoMultiple   = "Multiple"
	TipoRanking    = "Ranking"
	TipoEscala     = "Escala"
	TipoLikert     = "Likert"
	TipoNumerica   = "Numerica"
	TipoMixta      = "Mixta"
)

type TipoPregunta struct {
	ID           uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TipoPregunta string `gorm:"column:tipo_pregunta;size:50;not null;unique" json:"tipo_pregunta"`
	Indicacion   string `gorm:"column:indicacion;type:text" json:"indicacion"`
}

func (TipoPregunta) TableName() string {
	return "tipo_pregunta"
}

// EsMultiple indica si el tipo admite varias opciones marcadas a la vez.
func EsMultiple(tipo string) bool {
	return tipo == TipoMultiple
}

// AdmiteTexto indica si el tipo lleva campo de texto libre.
func AdmiteTexto(tipo string) bool {
	return tipo == TipoNumerica || tipo == TipoMixta
}

// EsSeleccionUnica: tipos que se responden con una sola opción.
func EsSeleccionUnica(tipo string) bool {
	switch tipo {
	case TipoDicotomica, TipoPolitomica, TipoRanking, TipoEscala, TipoLikert, TipoMixta:
		return true
	}
	return false
}
