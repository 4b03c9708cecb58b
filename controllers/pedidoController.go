package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"burgertic/middleware"
	"burgertic/services"
)

type CreatePedidoRequest struct {
	Platos []services.ItemPedido `json:"platos"`
}

func GetPedidos(pedidos *services.PedidoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lista, err := pedidos.GetPedidos(c.Request.Context())
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, lista)
	}
}

// GetPedidosUsuario lists the calling user's own pedidos. The owner comes
// from the token, never from the request.
func GetPedidosUsuario(pedidos *services.PedidoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := middleware.CurrentUsuario(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "usuario no autenticado"})
			return
		}

		lista, err := pedidos.GetPedidosByUsuario(c.Request.Context(), usuario.ID)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, lista)
	}
}

func GetPedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
			return
		}

		pedido, err := pedidos.GetPedidoByID(c.Request.Context(), id)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, pedido)
	}
}

func CreatePedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := middleware.CurrentUsuario(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "usuario no autenticado"})
			return
		}

		var req CreatePedidoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "el campo 'platos' debe ser un array de {id, cantidad}"})
			return
		}
		if req.Platos == nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "el campo 'platos' es requerido"})
			return
		}

		pedido, err := pedidos.CreatePedido(c.Request.Context(), usuario.ID, req.Platos)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "pedido creado exitosamente",
			"pedido":  pedido,
		})
	}
}

// transicionHandler builds the handler for one state-machine verb.
func transicionHandler(mensaje string, avanzar func(c *gin.Context, id int) (*services.PedidoDetalle, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
			return
		}

		pedido, err := avanzar(c, id)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": mensaje,
			"pedido":  pedido,
		})
	}
}

func AceptarPedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return transicionHandler("pedido aceptado exitosamente", func(c *gin.Context, id int) (*services.PedidoDetalle, error) {
		return pedidos.AceptarPedido(c.Request.Context(), id)
	})
}

func ComenzarPedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return transicionHandler("pedido comenzado exitosamente", func(c *gin.Context, id int) (*services.PedidoDetalle, error) {
		return pedidos.ComenzarPedido(c.Request.Context(), id)
	})
}

func EntregarPedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return transicionHandler("pedido entregado exitosamente", func(c *gin.Context, id int) (*services.PedidoDetalle, error) {
		return pedidos.EntregarPedido(c.Request.Context(), id)
	})
}

func DeletePedido(pedidos *services.PedidoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de pedido inválido"})
			return
		}

		if err := pedidos.DeletePedido(c.Request.Context(), id); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "pedido eliminado exitosamente"})
	}
}
