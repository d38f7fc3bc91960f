package models

import (
	"time"

	"Backend-Catequesis/src/utils"
)

// EstudianteRef es la copia puntual del estudiante que queda embebida en una
// inscripción. Es un snapshot al momento de inscribir, no una referencia viva:
// editar el estudiante después no toca este documento.
type EstudianteRef struct {
	ID     any    `bson:"_id" json:"id"`
	Cedula string `bson:"cedula" json:"cedula"`
	Nombre string `bson:"nombre" json:"nombre"`
}

// GrupoRef es la copia puntual del grupo al momento de inscribir. Los
// snapshots viejos también usan nombreGrupo en camelCase.
type GrupoRef struct {
	ID          any    `bson:"_id" json:"id"`
	NombreGrupo string `bson:"nombre_grupo,omitempty" json:"nombreGrupo"`
	Horario     string `bson:"horario" json:"horario"`
	DiaReunion  string `bson:"dia_reunion" json:"diaReunion"`

	// campo legacy, solo lectura
	NombreLegacy string `bson:"nombreGrupo,omitempty" json:"-"`
}

// Nombre devuelve el nombre snapshoteado probando primero el campo actual.
func (g GrupoRef) Nombre() string {
	return utils.FirstNonEmpty(g.NombreGrupo, g.NombreLegacy)
}

// Inscripcion - matrícula de un estudiante en un grupo. No tiene edición:
// solo se crea, se lista, y cae en cascada al borrar el estudiante o el grupo.
type Inscripcion struct {
	ID               any           `bson:"_id,omitempty" json:"id"`
	FechaInscripcion time.Time     `bson:"fecha_inscripcion" json:"fechaInscripcion"`
	Estado           string        `bson:"estado" json:"estado"`
	Estudiante       EstudianteRef `bson:"estudiante" json:"estudiante"`
	Grupo            GrupoRef      `bson:"grupo" json:"grupo"`
}

// NewInscripcion arma la inscripción snapshoteando estudiante y grupo tal
// como están ahora. Estado vacío queda "Activo".
func NewInscripcion(e *Estudiante, g *Grupo, estado string) Inscripcion {
	if estado == "" {
		estado = "Activo"
	}
	return Inscripcion{
		FechaInscripcion: time.Now(),
		Estado:           estado,
		Estudiante: EstudianteRef{
			ID:     e.ID,
			Cedula: e.Cedula,
			Nombre: e.NombreCompleto(),
		},
		Grupo: GrupoRef{
			ID:          g.ID,
			NombreGrupo: g.Nombre(),
			Horario:     g.Horario,
			DiaReunion:  g.Dia(),
		},
	}
}
