package routes

import (
	"Backend-Catequesis/src/controllers"
	"Backend-Catequesis/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func inscripcionRoutes(app *fiber.App) {
	grupo := app.Group("/inscripciones")
	grupo.Get("/", controllers.GetInscripciones)
	grupo.Get("/:id/asistencia/nueva", middleware.AuthJWT, controllers.NuevaAsistenciaForm)
	grupo.Post("/:id/asistencia/nueva", middleware.AuthJWT, controllers.CreateAsistencia)
}
