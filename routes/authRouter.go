package routes

import (
	"github.com/gin-gonic/gin"

	"burgertic/controllers"
	"burgertic/services"
)

func AuthRoutes(router *gin.Engine, usuarios *services.UsuarioService) {
	auth := router.Group("/auth")
	auth.POST("/register", controllers.Register(usuarios))
	auth.POST("/login", controllers.Login(usuarios))
}
