package controllers

import (
	"Backend-Catequesis/src/services/inscripciones"
	"Backend-Catequesis/src/utils"

	"github.com/gofiber/fiber/v2"
)

// GetInscripciones lista las inscripciones, las más recientes primero.
func GetInscripciones(c *fiber.Ctx) error {
	lista, err := inscripciones.GetInscripciones()
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
	}
	return c.Render("listar_inscripciones", fiber.Map{"Inscripciones": lista})
}
