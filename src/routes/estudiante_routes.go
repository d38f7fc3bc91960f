package routes

import (
	"Backend-Catequesis/src/controllers"
	"Backend-Catequesis/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// estudianteRoutes: los listados y el detalle son públicos, los formularios y
// las mutaciones requieren sesión de catequista.
func estudianteRoutes(app *fiber.App) {
	grupo := app.Group("/estudiantes")
	grupo.Get("/", controllers.GetEstudiantes)
	grupo.Get("/nuevo", middleware.AuthJWT, controllers.NuevoEstudianteForm)
	grupo.Post("/nuevo", middleware.AuthJWT, controllers.CreateEstudiante)
	grupo.Get("/:id", controllers.GetEstudianteDetalle)
	grupo.Get("/:id/editar", middleware.AuthJWT, controllers.EditarEstudianteForm)
	grupo.Post("/:id/editar", middleware.AuthJWT, controllers.UpdateEstudiante)
	grupo.Post("/:id/eliminar", middleware.AuthJWT, controllers.DeleteEstudiante)
	grupo.Get("/:id/inscribir", middleware.AuthJWT, controllers.InscribirEstudianteForm)
	grupo.Post("/:id/inscribir", middleware.AuthJWT, controllers.InscribirEstudiante)
}
