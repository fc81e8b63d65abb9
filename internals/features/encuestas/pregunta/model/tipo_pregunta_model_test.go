package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEsMultiple(t *testing.T) {
	assert.True(t, EsMultiple(TipoMultiple))
	assert.False(t, EsMultiple(TipoDicotomica))
	assert.False(t, EsMultiple(TipoMixta))
}

func TestAdmiteTexto(t *testing.T) {
	assert.True(t, AdmiteTexto(TipoNumerica))
	assert.True(t, AdmiteTexto(TipoMixta))
	assert.False(t, AdmiteTexto(TipoLikert))
}

// Ranking se responde marcando una sola posición, igual que Escala y Likert.
func TestEsSeleccionUnica(t *testing.T) {
	unicas := []string{TipoDicotomica, TipoPolitomica, TipoRanking, TipoEscala, TipoLikert, TipoMixta}
	for _, tipo := range unicas {
		assert.True(t, EsSeleccionUnica(tipo), tipo)
	}
	assert.False(t, EsSeleccionUnica(TipoMultiple))
	assert.False(t, EsSeleccionUnica(TipoNumerica))
	assert.False(t, EsSeleccionUnica("desconocido"))
}
