package middleware

import (
	"Backend-Catequesis/src/utils"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AuthJWT protege las rutas de mutación. El token puede venir en la cookie de
// sesión (navegador) o como Bearer en el header. Un navegador sin sesión va a
// /login; un cliente JSON recibe 401.
func AuthJWT(c *fiber.Ctx) error {
	tokenStr := c.Cookies("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	claims, err := utils.ParseJWT(tokenStr)
	if err != nil {
		if strings.Contains(c.Get("Accept"), "text/html") {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"ok": false, "error": "Sesión inválida o expirada"})
	}

	c.Locals("catequistaId", claims.CatequistaID)
	c.Locals("email", claims.Email)
	c.Locals("rol", claims.Rol)

	return c.Next()
}
