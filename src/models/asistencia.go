package models

import "time"

// InscripcionRef es la copia puntual de la inscripción que queda embebida en
// cada asistencia: el id más los snapshots de estudiante y grupo que esa
// inscripción ya traía.
type InscripcionRef struct {
	ID         any           `bson:"_id" json:"id"`
	Estudiante EstudianteRef `bson:"estudiante" json:"estudiante"`
	Grupo      GrupoRef      `bson:"grupo" json:"grupo"`
}

// Asistencia - registro de una sesión. Se crea desde una inscripción, se
// puede cambiar el estado, y se borra sola (nada la referencia).
type Asistencia struct {
	ID          any            `bson:"_id,omitempty" json:"id"`
	FechaSesion time.Time      `bson:"fecha_sesion" json:"fechaSesion"`
	Estado      string         `bson:"estado" json:"estado"`
	Inscripcion InscripcionRef `bson:"inscripcion" json:"inscripcion"`
}

// NewAsistencia snapshotea la inscripción al momento de registrar la sesión.
// Estado vacío queda "Presente".
func NewAsistencia(insc *Inscripcion, estado string) Asistencia {
	if estado == "" {
		estado = "Presente"
	}
	return Asistencia{
		FechaSesion: time.Now(),
		Estado:      estado,
		Inscripcion: InscripcionRef{
			ID:         insc.ID,
			Estudiante: insc.Estudiante,
			Grupo:      insc.Grupo,
		},
	}
}

// AsistenciaView son los campos seguros ya formateados para la vista; se
// calculan en cada request y nunca se persisten.
type AsistenciaView struct {
	Asistencia
	EstudianteNombre string
	GrupoNombre      string
	FechaSesionTxt   string
}
