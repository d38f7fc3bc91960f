package routes

import (
	"Backend-Catequesis/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// InitRoutes registra todas las rutas de la aplicación.
func InitRoutes(app *fiber.App) {
	app.Get("/", controllers.Index)
	app.Get("/ping", controllers.Ping)

	authRoutes(app)
	estudianteRoutes(app)
	inscripcionRoutes(app)
	asistenciaRoutes(app)
	grupoRoutes(app)
	eventoRoutes(app)
}
