package routes

import (
	"Backend-Catequesis/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func authRoutes(app *fiber.App) {
	app.Get("/login", controllers.LoginForm)
	app.Post("/login", controllers.Login)
	app.Get("/logout", controllers.Logout)
}
