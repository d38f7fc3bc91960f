package controllers

import (
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/services/estudiantes"
	"Backend-Catequesis/src/services/grupos"
	"Backend-Catequesis/src/services/inscripciones"
	"Backend-Catequesis/src/utils"

	"github.com/gofiber/fiber/v2"
)

func estudianteFromForm(form models.EstudianteForm) models.Estudiante {
	fecha, _ := utils.ParseFecha(form.FechaNacimiento) // ya validado con datetime=2006-01-02
	return models.Estudiante{
		Cedula:          form.Cedula,
		Nombres:         form.Nombres,
		Apellidos:       form.Apellidos,
		FechaNacimiento: &fecha,
		Direccion:       form.Direccion,
		Representante: models.Representante{
			Nombre:   form.RepNombre,
			Telefono: form.RepTelefono,
		},
	}
}

// NuevoEstudianteForm muestra el formulario de registro.
func NuevoEstudianteForm(c *fiber.Ctx) error {
	return c.Render("registrar_estudiante", fiber.Map{})
}

// CreateEstudiante registra un estudiante desde el formulario.
func CreateEstudiante(c *fiber.Ctx) error {
	var form models.EstudianteForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("registrar_estudiante", fiber.Map{
			"Error": "Formulario inválido",
		})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("registrar_estudiante", fiber.Map{
			"Error": "Revisa los campos: cédula, nombres, apellidos y fecha (YYYY-MM-DD) son obligatorios",
		})
	}

	e := estudianteFromForm(form)
	if err := estudiantes.CreateEstudiante(&e); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error guardando el estudiante")
	}

	return c.Redirect("/")
}

// GetEstudiantes lista los estudiantes ordenados por apellidos.
func GetEstudiantes(c *fiber.Ctx) error {
	lista, err := estudiantes.GetEstudiantes()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}
	return c.Render("listar_estudiantes", fiber.Map{"Estudiantes": lista})
}

// GetEstudianteDetalle muestra un estudiante por id.
func GetEstudianteDetalle(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	e, err := estudiantes.GetEstudianteByKey(key)
	if err != nil {
		return fetchError(c, err, "Estudiante no encontrado")
	}

	return c.Render("detalle_estudiante", fiber.Map{
		"Estudiante": e,
		"FechaNac":   utils.FormatFecha(e.FechaNacimiento),
	})
}

// EditarEstudianteForm muestra el formulario de edición con la fecha en el
// formato del input type=date.
func EditarEstudianteForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	e, err := estudiantes.GetEstudianteByKey(key)
	if err != nil {
		return fetchError(c, err, "Estudiante no encontrado")
	}

	fechaNac := ""
	if e.FechaNacimiento != nil {
		fechaNac = e.FechaNacimiento.Format("2006-01-02")
	}

	return c.Render("editar_estudiante", fiber.Map{
		"Estudiante": e,
		"FechaNac":   fechaNac,
		"ID":         key.String(),
	})
}

// UpdateEstudiante aplica la edición y vuelve al listado.
func UpdateEstudiante(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if _, err := estudiantes.GetEstudianteByKey(key); err != nil {
		return fetchError(c, err, "Estudiante no encontrado")
	}

	var form models.EstudianteForm
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if err := validate.Struct(form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Revisa los campos: cédula, nombres, apellidos y fecha (YYYY-MM-DD) son obligatorios")
	}

	e := estudianteFromForm(form)
	if err := estudiantes.UpdateEstudiante(key, &e); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error actualizando el estudiante")
	}

	return c.Redirect("/estudiantes")
}

// DeleteEstudiante borra el estudiante con cascada sobre sus inscripciones.
func DeleteEstudiante(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if err := estudiantes.DeleteEstudiante(key); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error eliminando el estudiante")
	}
	return c.Redirect("/estudiantes")
}

// InscribirEstudianteForm muestra el formulario de inscripción con los grupos
// disponibles.
func InscribirEstudianteForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	e, err := estudiantes.GetEstudianteByKey(key)
	if err != nil {
		return fetchError(c, err, "Estudiante no encontrado")
	}

	disponibles, err := grupos.GetGrupos()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}

	return c.Render("inscribir_estudiante", fiber.Map{
		"Estudiante": e,
		"Grupos":     disponibles,
		"ID":         key.String(),
	})
}

// InscribirEstudiante crea la inscripción snapshoteando estudiante y grupo.
func InscribirEstudiante(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	e, err := estudiantes.GetEstudianteByKey(key)
	if err != nil {
		return fetchError(c, err, "Estudiante no encontrado")
	}

	grupoKey := utils.ParseDocKey(c.FormValue("grupo_id"))
	g, err := grupos.GetGrupoByKey(grupoKey)
	if err != nil {
		return fetchError(c, err, "Grupo no encontrado")
	}

	estado := c.FormValue("estado", "Activo")
	if _, err := inscripciones.CreateInscripcion(e, g, estado); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error guardando la inscripción")
	}

	return c.Redirect("/estudiantes")
}
