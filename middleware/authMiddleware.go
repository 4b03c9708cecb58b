package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"burgertic/config"
	"burgertic/helpers"
	"burgertic/models"
	"burgertic/services"
)

const usuarioKey = "usuario"

// Authentication resolves the Authorization header to a live usuario and
// stores it in the gin context. The header must be exactly
// "Bearer <token>"; a token whose id no longer resolves to a stored user
// is rejected the same as a bad signature.
func Authentication(usuarios *services.UsuarioService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token de acceso requerido"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "formato de token inválido"})
			return
		}

		claims, err := helpers.ValidateToken(parts[1], config.JWTSecret())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "token inválido o expirado"})
			return
		}

		usuario, err := usuarios.GetUsuarioByID(c.Request.Context(), claims.ID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "usuario no encontrado"})
			return
		}

		c.Set(usuarioKey, usuario)
		c.Next()
	}
}

// AdminOnly rejects authenticated callers that lack the admin flag. Must
// run after Authentication.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario, ok := CurrentUsuario(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "usuario no autenticado"})
			return
		}
		if !usuario.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "acceso denegado: se requieren permisos de administrador"})
			return
		}
		c.Next()
	}
}

// CurrentUsuario returns the usuario placed in the context by
// Authentication.
func CurrentUsuario(c *gin.Context) (*models.Usuario, bool) {
	value, exists := c.Get(usuarioKey)
	if !exists {
		return nil, false
	}
	usuario, ok := value.(*models.Usuario)
	return usuario, ok
}
