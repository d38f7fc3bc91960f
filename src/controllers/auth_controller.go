package controllers

import (
	"Backend-Catequesis/src/models"
	"Backend-Catequesis/src/services"
	"Backend-Catequesis/src/utils"
	"time"

	"github.com/gofiber/fiber/v2"
)

// LoginForm muestra el formulario de ingreso.
func LoginForm(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{})
}

// Login valida credenciales, firma el JWT y lo deja en la cookie de sesión.
func Login(c *fiber.Ctx) error {
	var form models.LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Formulario inválido",
		})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(fiber.StatusBadRequest).Render("login", fiber.Map{
			"Error": "Email y contraseña son obligatorios",
		})
	}

	cat, err := services.AuthenticateCatequista(form.Email, form.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{
			"Error": "Email o contraseña inválidos",
		})
	}

	token, err := utils.GenerateJWT(cat.ID.Hex(), cat.Email, cat.Rol)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "No se pudo generar la sesión")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect("/")
}

// Logout limpia la cookie de sesión.
func Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.Redirect("/login")
}
