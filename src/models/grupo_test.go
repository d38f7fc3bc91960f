package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrupoNombreFallback(t *testing.T) {
	assert.Equal(t, "Actual", (&Grupo{NombreGrupo: "Actual", NombreLegacy: "Viejo"}).Nombre())
	assert.Equal(t, "Viejo", (&Grupo{NombreLegacy: "Viejo"}).Nombre())
	assert.Equal(t, "", (&Grupo{}).Nombre())

	assert.Equal(t, "Sábado", (&Grupo{DiaReunion: "Sábado", DiaLegacy: "Domingo"}).Dia())
	assert.Equal(t, "Domingo", (&Grupo{DiaLegacy: "Domingo"}).Dia())
}

func TestEstudianteNombreCompleto(t *testing.T) {
	e := Estudiante{Nombres: "María José", Apellidos: "Andrade Paz"}
	assert.Equal(t, "María José Andrade Paz", e.NombreCompleto())

	soloNombre := Estudiante{Nombres: "María"}
	assert.Equal(t, "María", soloNombre.NombreCompleto())

	vacio := Estudiante{}
	assert.Equal(t, "", vacio.NombreCompleto())
}
