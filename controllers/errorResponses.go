package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"burgertic/services"
)

// abortWithServiceError maps the service error taxonomy onto HTTP statuses.
// Unexpected failures are logged server-side and surfaced as a generic 500.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var platoErr *services.PlatoInexistenteError
	var transicionErr *services.TransicionInvalidaError

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &platoErr),
		errors.As(err, &transicionErr),
		errors.Is(err, services.ErrEmailRegistrado),
		errors.Is(err, services.ErrCredencialesInvalidas):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrPedidoNoEncontrado),
		errors.Is(err, services.ErrPlatoNoEncontrado),
		errors.Is(err, services.ErrUsuarioNoEncontrado):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "error interno del servidor"})
	}
}
