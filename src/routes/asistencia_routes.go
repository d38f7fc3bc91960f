package routes

import (
	"Backend-Catequesis/src/controllers"
	"Backend-Catequesis/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func asistenciaRoutes(app *fiber.App) {
	grupo := app.Group("/asistencias")
	grupo.Get("/", controllers.GetAsistencias)
	grupo.Get("/:id/editar", middleware.AuthJWT, controllers.EditarAsistenciaForm)
	grupo.Post("/:id/editar", middleware.AuthJWT, controllers.UpdateAsistencia)
	grupo.Post("/:id/eliminar", middleware.AuthJWT, controllers.DeleteAsistencia)
}
