package controllers

import (
	"Backend-Catequesis/src/database"
	"Backend-Catequesis/src/services/eventos"
	"Backend-Catequesis/src/services/tablero"
	"Backend-Catequesis/src/utils"

	"github.com/gofiber/fiber/v2"
)

// Index muestra el tablero: contadores por colección y los próximos 5 eventos.
func Index(c *fiber.Ctx) error {
	stats, err := tablero.GetStats()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}

	proximos, err := eventos.GetProximosEventos(5)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}

	return c.Render("index", fiber.Map{
		"Stats":   stats,
		"Eventos": proximos,
	})
}

// Ping es la prueba rápida de conexión: nombre de la base y sus colecciones.
func Ping(c *fiber.Ctx) error {
	colecciones, err := database.ListCollectionNames(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Sin conexión a la base de datos")
	}

	return c.JSON(fiber.Map{
		"ok":          true,
		"db":          database.DBName(),
		"colecciones": colecciones,
	})
}
