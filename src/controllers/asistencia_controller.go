package controllers

import (
	"Backend-Catequesis/src/services/asistencias"
	"Backend-Catequesis/src/services/inscripciones"
	"Backend-Catequesis/src/utils"

	"github.com/gofiber/fiber/v2"
)

// NuevaAsistenciaForm muestra el formulario de registro de sesión para una
// inscripción.
func NuevaAsistenciaForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	insc, err := inscripciones.GetInscripcionByKey(key)
	if err != nil {
		return fetchError(c, err, "Inscripción no encontrada")
	}

	return c.Render("registrar_asistencia", fiber.Map{
		"Inscripcion": insc,
		"ID":          key.String(),
	})
}

// CreateAsistencia registra la sesión snapshoteando la inscripción padre.
func CreateAsistencia(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	insc, err := inscripciones.GetInscripcionByKey(key)
	if err != nil {
		return fetchError(c, err, "Inscripción no encontrada")
	}

	estado := c.FormValue("estado", "Presente")
	if _, err := asistencias.CreateAsistencia(insc, estado); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error guardando la asistencia")
	}

	return c.Redirect("/inscripciones")
}

// GetAsistencias lista las asistencias con los campos seguros para la vista.
func GetAsistencias(c *fiber.Ctx) error {
	lista, err := asistencias.GetAsistencias()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}
	return c.Render("listar_asistencias", fiber.Map{"Asistencias": lista})
}

// EditarAsistenciaForm muestra el formulario de edición de estado.
func EditarAsistenciaForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	a, err := asistencias.GetAsistenciaByKey(key)
	if err != nil {
		return fetchError(c, err, "Asistencia no encontrada")
	}

	return c.Render("editar_asistencia", fiber.Map{
		"Asistencia": asistencias.ToView(*a),
		"ID":         key.String(),
	})
}

// UpdateAsistencia cambia solo el estado; el snapshot embebido queda intacto.
func UpdateAsistencia(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if _, err := asistencias.GetAsistenciaByKey(key); err != nil {
		return fetchError(c, err, "Asistencia no encontrada")
	}

	estado := c.FormValue("estado", "Presente")
	if err := asistencias.UpdateEstado(key, estado); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error actualizando la asistencia")
	}

	return c.Redirect("/asistencias")
}

// DeleteAsistencia borra la asistencia; no hay cascada.
func DeleteAsistencia(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if err := asistencias.DeleteAsistencia(key); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error eliminando la asistencia")
	}
	return c.Redirect("/asistencias")
}
