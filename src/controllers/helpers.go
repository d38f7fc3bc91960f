package controllers

import (
	"Backend-Catequesis/src/utils"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
)

var validate = validator.New()

// fetchError mapea el error de una búsqueda por id: documento inexistente es
// el 404 estructurado, cualquier otra cosa es falla del store.
func fetchError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return utils.NotFound(c, notFoundMsg)
	}
	return utils.HandleError(c, fiber.StatusInternalServerError, "Error consultando la base de datos")
}
