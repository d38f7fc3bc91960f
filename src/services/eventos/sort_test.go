package eventos

import (
	"Backend-Catequesis/src/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrdenarPorFecha(t *testing.T) {
	enero := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	marzo := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	legacy := time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)

	lista := []models.Evento{
		{NombreEvento: "Marzo", FechaEvento: &marzo},
		{NombreEvento: "SinFecha"},
		{NombreEvento: "LegacyDiciembre", FechaLegacy: &legacy},
		{NombreEvento: "Enero", FechaEvento: &enero},
	}

	OrdenarPorFecha(lista)

	nombres := make([]string, 0, len(lista))
	for _, e := range lista {
		nombres = append(nombres, e.NombreEvento)
	}
	// el evento sin fecha ordena primero; el legacy usa su fecha camelCase
	assert.Equal(t, []string{"SinFecha", "LegacyDiciembre", "Enero", "Marzo"}, nombres)
}

func TestOrdenarPorFechaNoFallaConListaVacia(t *testing.T) {
	var lista []models.Evento
	require.NotPanics(t, func() { OrdenarPorFecha(lista) })
}
