package routes

import (
	"github.com/gin-gonic/gin"

	"burgertic/controllers"
	"burgertic/middleware"
	"burgertic/services"
)

// PlatoRoutes mounts the catalog. Reads are public; mutations require an
// admin token.
func PlatoRoutes(router *gin.Engine, platos *services.PlatoService, usuarios *services.UsuarioService) {
	grupo := router.Group("/platos")
	grupo.GET("", controllers.GetPlatos(platos))
	grupo.GET("/:id", controllers.GetPlato(platos))

	admin := grupo.Group("", middleware.Authentication(usuarios), middleware.AdminOnly())
	admin.POST("", controllers.CreatePlato(platos))
	admin.DELETE("/:id", controllers.DeletePlato(platos))
}
