package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"burgertic/models"
	"burgertic/services"
)

type CreatePlatoRequest struct {
	Tipo        string           `json:"tipo" validate:"required,oneof=principal combo postre entrada bebida"`
	Nombre      string           `json:"nombre" validate:"required,max=100"`
	Precio      *decimal.Decimal `json:"precio" validate:"required"`
	Descripcion string           `json:"descripcion"`
}

func GetPlatos(platos *services.PlatoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lista, err := platos.GetPlatos(c.Request.Context())
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, lista)
	}
}

func GetPlato(platos *services.PlatoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de plato inválido"})
			return
		}

		plato, err := platos.GetPlatoByID(c.Request.Context(), id)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, plato)
	}
}

func CreatePlato(platos *services.PlatoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePlatoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cuerpo de la petición inválido"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if req.Precio.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "el precio no puede ser negativo"})
			return
		}

		plato := models.Plato{
			Tipo:        req.Tipo,
			Nombre:      req.Nombre,
			Precio:      *req.Precio,
			Descripcion: req.Descripcion,
		}
		if err := platos.CreatePlato(c.Request.Context(), &plato); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusCreated, plato)
	}
}

func DeletePlato(platos *services.PlatoService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "id de plato inválido"})
			return
		}

		if err := platos.DeletePlato(c.Request.Context(), id); err != nil {
			abortWithServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "plato eliminado exitosamente"})
	}
}
