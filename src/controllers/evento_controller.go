package controllers

import (
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/services/eventos"
	"Backend-Catequesis/src/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func eventoFromForm(form models.EventoForm) models.Evento {
	fecha, _ := utils.ParseFecha(form.FechaEvento) // ya validado con datetime=2006-01-02

	parroquiaID := models.ParroquiaDefaultID
	if form.ParroquiaID != "" {
		if n, err := strconv.Atoi(form.ParroquiaID); err == nil {
			parroquiaID = n
		}
	}
	parroquiaNombre := form.ParroquiaNombre
	if parroquiaNombre == "" {
		parroquiaNombre = models.ParroquiaDefaultNombre
	}

	return models.Evento{
		NombreEvento: form.NombreEvento,
		Descripcion:  form.Descripcion,
		FechaEvento:  &fecha,
		Parroquia: models.Parroquia{
			ID:     parroquiaID,
			Nombre: parroquiaNombre,
		},
	}
}

// GetEventos lista los eventos ordenados por fecha, los sin fecha primero.
func GetEventos(c *fiber.Ctx) error {
	lista, err := eventos.GetEventos()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}
	return c.Render("listar_eventos", fiber.Map{"Eventos": lista})
}

// NuevoEventoForm muestra el formulario de evento nuevo.
func NuevoEventoForm(c *fiber.Ctx) error {
	return c.Render("nuevo_evento", fiber.Map{})
}

// CreateEvento registra un evento desde el formulario.
func CreateEvento(c *fiber.Ctx) error {
	var form models.EventoForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("nuevo_evento", fiber.Map{
			"Error": "Formulario inválido",
		})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("nuevo_evento", fiber.Map{
			"Error": "Nombre y fecha (YYYY-MM-DD) son obligatorios; el id de parroquia debe ser numérico",
		})
	}

	e := eventoFromForm(form)
	if err := eventos.CreateEvento(&e); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error guardando el evento")
	}

	return c.Redirect("/eventos")
}

// EditarEventoForm muestra el formulario de edición con la fecha en el
// formato del input type=date.
func EditarEventoForm(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	e, err := eventos.GetEventoByKey(key)
	if err != nil {
		return fetchError(c, err, "Evento no encontrado")
	}

	fechaTxt := ""
	if f := e.Fecha(); f != nil {
		fechaTxt = f.Format("2006-01-02")
	}

	return c.Render("editar_evento", fiber.Map{
		"Evento":   e,
		"FechaTxt": fechaTxt,
		"ID":       key.String(),
	})
}

// UpdateEvento aplica la edición y vuelve al listado.
func UpdateEvento(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if _, err := eventos.GetEventoByKey(key); err != nil {
		return fetchError(c, err, "Evento no encontrado")
	}

	var form models.EventoForm
	if err := c.BodyParser(&form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Formulario inválido")
	}
	if err := validate.Struct(form); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Nombre y fecha (YYYY-MM-DD) son obligatorios; el id de parroquia debe ser numérico")
	}

	e := eventoFromForm(form)
	if err := eventos.UpdateEvento(key, &e); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error actualizando el evento")
	}

	return c.Redirect("/eventos")
}

// DeleteEvento borra el evento.
func DeleteEvento(c *fiber.Ctx) error {
	key := utils.ParseDocKey(c.Params("id"))
	if err := eventos.DeleteEvento(key); err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error eliminando el evento")
	}
	return c.Redirect("/eventos")
}
