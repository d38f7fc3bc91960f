package routes

import (
	"Backend-Catequesis/src/controllers"
	"Backend-Catequesis/src/middleware"

	"github.com/gofiber/fiber/v2"
)

func grupoRoutes(app *fiber.App) {
	grupo := app.Group("/grupos")
	grupo.Get("/", controllers.GetGrupos)
	grupo.Get("/nuevo", middleware.AuthJWT, controllers.NuevoGrupoForm)
	grupo.Post("/nuevo", middleware.AuthJWT, controllers.CreateGrupo)
	grupo.Get("/:id/editar", middleware.AuthJWT, controllers.EditarGrupoForm)
	grupo.Post("/:id/editar", middleware.AuthJWT, controllers.UpdateGrupo)
	grupo.Post("/:id/eliminar", middleware.AuthJWT, controllers.DeleteGrupo)
}
