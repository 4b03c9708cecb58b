package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"burgertic/config"
	"burgertic/database"
	"burgertic/routes"
	"burgertic/services"
)

func main() {
	config.Load()

	if config.JWTSecret() == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	db, err := database.Connect(config.DatabaseURL())
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("failed to migrate database: %v", err)
	}
	if config.SeedDB() {
		if err := database.Seed(db); err != nil {
			logrus.Fatalf("failed to seed database: %v", err)
		}
	}
	logrus.Info("database ready")

	usuarioService := services.NewUsuarioService(db)
	platoService := services.NewPlatoService(db)
	pedidoService := services.NewPedidoService(db)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "BurgerTIC API is running"})
	})

	routes.AuthRoutes(router, usuarioService)
	routes.PlatoRoutes(router, platoService, usuarioService)
	routes.PedidoRoutes(router, pedidoService, usuarioService)

	logrus.Infof("listening on port %s", config.Port())
	if err := router.Run(":" + config.Port()); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
