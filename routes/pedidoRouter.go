package routes

import (
	"github.com/gin-gonic/gin"

	"burgertic/controllers"
	"burgertic/middleware"
	"burgertic/services"
)

// PedidoRoutes mounts the order pipeline. Users create and read their own
// pedidos; only administrators see the full list and drive the estado
// transitions.
func PedidoRoutes(router *gin.Engine, pedidos *services.PedidoService, usuarios *services.UsuarioService) {
	grupo := router.Group("/pedidos", middleware.Authentication(usuarios))
	grupo.GET("/usuario", controllers.GetPedidosUsuario(pedidos))
	grupo.POST("", controllers.CreatePedido(pedidos))

	admin := grupo.Group("", middleware.AdminOnly())
	admin.GET("", controllers.GetPedidos(pedidos))
	admin.GET("/:id", controllers.GetPedido(pedidos))
	admin.PUT("/:id/aceptar", controllers.AceptarPedido(pedidos))
	admin.PUT("/:id/comenzar", controllers.ComenzarPedido(pedidos))
	admin.PUT("/:id/entregar", controllers.EntregarPedido(pedidos))
	admin.DELETE("/:id", controllers.DeletePedido(pedidos))
}
