package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator"

	"burgertic/config"
	"burgertic/helpers"
	"burgertic/services"
)

var validate = validator.New()

type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=50"`
	Apellido string `json:"apellido" validate:"required,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a non-admin account. The admin flag is not part of the
// request shape, so it cannot be set from outside.
func Register(usuarios *services.UsuarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "todos los campos son requeridos: nombre, apellido, email, password"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usuario, err := usuarios.CreateUsuario(c.Request.Context(), req.Nombre, req.Apellido, req.Email, req.Password)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "usuario registrado exitosamente",
			"usuario": usuario,
		})
	}
}

// Login verifies credentials and issues a 30-minute bearer token.
func Login(usuarios *services.UsuarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email y contraseña son requeridos"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		usuario, err := usuarios.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		token, err := helpers.GenerateToken(usuario.ID, config.JWTSecret())
		if err != nil {
			abortWithServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "login exitoso",
			"usuario": usuario,
			"token":   token,
		})
	}
}
