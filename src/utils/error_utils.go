// error_utils.go
package utils

import (
	"github.com/gofiber/fiber/v2"
)

// HandleError escribe el payload estándar de error {ok:false, error:...}.
func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"ok":    false,
		"error": message,
	})
}

// NotFound responde 404 con ese mismo payload; lo usan todos los handlers
// cuando un id no corresponde a ningún documento.
func NotFound(c *fiber.Ctx, message string) error {
	return HandleError(c, fiber.StatusNotFound, message)
}
