package models

import (
	"strings"
	"time"
)

// Representante es el adulto responsable del estudiante, embebido en el
// documento.
type Representante struct {
	Nombre   string `bson:"nombre" json:"nombre"`
	Telefono string `bson:"telefono" json:"telefono"`
}

// Estudiante - catequizando inscrito en el programa. El _id puede venir como
// ObjectID, entero o string según el origen del documento, por eso es any.
type Estudiante struct {
	ID              any           `bson:"_id,omitempty" json:"id"`
	Cedula          string        `bson:"cedula" json:"cedula"`
	Nombres         string        `bson:"nombres" json:"nombres"`
	Apellidos       string        `bson:"apellidos" json:"apellidos"`
	FechaNacimiento *time.Time    `bson:"fecha_nacimiento,omitempty" json:"fechaNacimiento,omitempty"`
	Direccion       string        `bson:"direccion" json:"direccion"`
	Representante   Representante `bson:"representante" json:"representante"`
}

// NombreCompleto arma "nombres apellidos" para las vistas y los snapshots.
func (e *Estudiante) NombreCompleto() string {
	return strings.TrimSpace(e.Nombres + " " + e.Apellidos)
}

// EstudianteForm son los campos del formulario de registro/edición.
type EstudianteForm struct {
	Cedula          string `form:"cedula" validate:"required"`
	Nombres         string `form:"nombres" validate:"required"`
	Apellidos       string `form:"apellidos" validate:"required"`
	FechaNacimiento string `form:"fecha_nacimiento" validate:"required,datetime=2006-01-02"`
	Direccion       string `form:"direccion"`
	RepNombre       string `form:"rep_nombre"`
	RepTelefono     string `form:"rep_telefono"`
}
