package models

import "Backend-Catequesis/src/utils"

// Grupo de catequesis. Los documentos viejos usan nombreGrupo/diaReunion en
// camelCase; se decodifican aparte y los accessors aplican el fallback.
type Grupo struct {
	ID          any    `bson:"_id,omitempty" json:"id"`
	NombreGrupo string `bson:"nombre_grupo,omitempty" json:"nombreGrupo"`
	Horario     string `bson:"horario" json:"horario"`
	DiaReunion  string `bson:"dia_reunion,omitempty" json:"diaReunion"`
	Estado      string `bson:"estado" json:"estado"`

	// campos legacy, solo lectura
	NombreLegacy string `bson:"nombreGrupo,omitempty" json:"-"`
	DiaLegacy    string `bson:"diaReunion,omitempty" json:"-"`
}

// Nombre devuelve el nombre del grupo probando primero el campo actual.
func (g *Grupo) Nombre() string {
	return utils.FirstNonEmpty(g.NombreGrupo, g.NombreLegacy)
}

// Dia devuelve el día de reunión con el mismo fallback.
func (g *Grupo) Dia() string {
	return utils.FirstNonEmpty(g.DiaReunion, g.DiaLegacy)
}

// GrupoForm son los campos del formulario de grupo.
type GrupoForm struct {
	NombreGrupo string `form:"nombre_grupo" validate:"required"`
	Horario     string `form:"horario" validate:"required"`
	DiaReunion  string `form:"dia_reunion" validate:"required"`
	Estado      string `form:"estado"`
}
