package routes

import (
	"Backend-Catequesis/src/controllers"
	"Backend-Catequesis/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func eventoRoutes(app *fiber.App) {
	grupo := app.Group("/eventos")
	grupo.Get("/", controllers.GetEventos)
	grupo.Get("/nuevo", middleware.AuthJWT, controllers.NuevoEventoForm)
	grupo.Post("/nuevo", middleware.AuthJWT, controllers.CreateEvento)
	grupo.Get("/:id/editar", middleware.AuthJWT, controllers.EditarEventoForm)
	grupo.Post("/:id/editar", middleware.AuthJWT, controllers.UpdateEvento)
	grupo.Post("/:id/eliminar", middleware.AuthJWT, controllers.DeleteEvento)
}
