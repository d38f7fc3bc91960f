package models

import "time"

// Parroquia embebida en cada evento. Si el formulario no la manda se usa la
// parroquia sede (id 1, "San José").
type Parroquia struct {
	ID     int    `bson:"idParroquia" json:"idParroquia"`
	Nombre string `bson:"nombreParroquia" json:"nombreParroquia"`
}

const (
	ParroquiaDefaultID     = 1
	ParroquiaDefaultNombre = "San José"
)

// Evento parroquial. fecha_evento tiene la variante legacy fechaEvento.
type Evento struct {
	ID           any        `bson:"_id,omitempty" json:"id"`
	NombreEvento string     `bson:"nombre_evento" json:"nombreEvento"`
	Descripcion  string     `bson:"descripcion" json:"descripcion"`
	FechaEvento  *time.Time `bson:"fecha_evento,omitempty" json:"fechaEvento,omitempty"`
	Parroquia    Parroquia  `bson:"parroquia" json:"parroquia"`

	FechaLegacy *time.Time `bson:"fechaEvento,omitempty" json:"-"`
}

// Fecha devuelve la fecha del evento probando primero el campo actual.
func (e *Evento) Fecha() *time.Time {
	if e.FechaEvento != nil {
		return e.FechaEvento
	}
	return e.FechaLegacy
}

// FechaOrden devuelve la clave de orden: un evento sin fecha usa el tiempo
// cero como centinela y queda primero en la lista.
func (e *Evento) FechaOrden() time.Time {
	if f := e.Fecha(); f != nil {
		return *f
	}
	return time.Time{}
}

// EventoForm son los campos del formulario de evento.
type EventoForm struct {
	NombreEvento    string `form:"nombre_evento" validate:"required"`
	Descripcion     string `form:"descripcion"`
	FechaEvento     string `form:"fecha_evento" validate:"required,datetime=2006-01-02"`
	ParroquiaID     string `form:"parroquia_id" validate:"omitempty,numeric"`
	ParroquiaNombre string `form:"parroquia_nombre"`
}
