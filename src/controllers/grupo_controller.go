package controllers

import (
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/services/grupos"
	"Backend-Catequesis/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetGrupos lista los grupos ordenados por nombre.
func GetGrupos(c *fiber.Ctx) error {
	lista, err := grupos.GetGrupos()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}
	return c.Render("listar_grupos", fiber.Map{"Grupos": lista})
}

// NuevoGrupoForm muestra el formulario de grupo nuevo.
func NuevoGrupoForm(c *fiber.Ctx) error {
	return c.Render("nuevo_grupo", fiber.Map{})
}

// CreateGrupo registra un grupo desde el formulario.
func CreateGrupo(c *fiber.Ctx) error {
	var form models.GrupoForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("nuevo_grupo", fiber.Map{
			"Error": "Formulario inválido",
		})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("nuevo_grupo", fiber.Map{
			"Error": "Nombre, horario y día de reunión son obligatorios",
		})
	}

	g := models.Grupo{
		NombreGrupo: form.NombreGrupo,
		Horario:     form.Horario,
		DiaReunion:  form.DiaReunion,
		Estado:      form.Estado,
	}
	if err := grupos.CreateGrupo(&g); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error guardando el grupo")
	}

	return c.Redirect("/grupos")
}

// EditarGrupoForm muestra el formulario de edición.
func EditarGrupoForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	g, err := grupos.GetGrupoByKey(key)
	if err != nil {
		return fetchError(c, err, "Grupo no encontrado")
	}

	return c.Render("editar_grupo", fiber.Map{
		"Grupo": g,
		"ID":    key.String(),
	})
}

// UpdateGrupo aplica la edición y vuelve al listado.
func UpdateGrupo(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if _, err := grupos.GetGrupoByKey(key); err != nil {
		return fetchError(c, err, "Grupo no encontrado")
	}

	var form models.GrupoForm
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if err := validate.Struct(form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Nombre, horario y día de reunión son obligatorios")
	}

	g := models.Grupo{
		NombreGrupo: form.NombreGrupo,
		Horario:     form.Horario,
		DiaReunion:  form.DiaReunion,
		Estado:      form.Estado,
	}
	if err := grupos.UpdateGrupo(key, &g); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error actualizando el grupo")
	}

	return c.Redirect("/grupos")
}

// DeleteGrupo borra el grupo con cascada sobre sus inscripciones.
func DeleteGrupo(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if err := grupos.DeleteGrupo(key); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error eliminando el grupo")
	}
	return c.Redirect("/grupos")
}
