package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewAsistenciaSnapshot(t *testing.T) {
	insc := &Inscripcion{
		ID:               primitive.NewObjectID(),
		FechaInscripcion: time.Now(),
		Estado:           "Activo",
		Estudiante: EstudianteRef{
			ID:     primitive.NewObjectID(),
			Cedula: "1102233445",
			Nombre: "María José Andrade Paz",
		},
		Grupo: GrupoRef{
			ID:          int64(1),
			NombreGrupo: "Primera Comunión A",
			Horario:     "09:00",
			DiaReunion:  "Sábado",
		},
	}

	a := NewAsistencia(insc, "")

	assert.Equal(t, "Presente", a.Estado)
	assert.WithinDuration(t, time.Now(), a.FechaSesion, time.Second)

	// la asistencia copia el snapshot que la inscripción ya traía
	assert.Equal(t, insc.ID, a.Inscripcion.ID)
	assert.Equal(t, insc.Estudiante, a.Inscripcion.Estudiante)
	assert.Equal(t, insc.Grupo, a.Inscripcion.Grupo)
}

func TestNewAsistenciaNoSigueEdiciones(t *testing.T) {
	insc := &Inscripcion{
		ID:         int64(9),
		Estudiante: EstudianteRef{ID: int64(1), Nombre: "Luis Zambrano"},
		Grupo:      GrupoRef{ID: int64(2), NombreGrupo: "Confirmación"},
	}

	a := NewAsistencia(insc, "Ausente")
	assert.Equal(t, "Ausente", a.Estado)

	insc.Estudiante.Nombre = "Otro Nombre"
	insc.Grupo.NombreGrupo = "Otro Grupo"

	assert.Equal(t, "Luis Zambrano", a.Inscripcion.Estudiante.Nombre)
	assert.Equal(t, "Confirmación", a.Inscripcion.Grupo.NombreGrupo)
}
