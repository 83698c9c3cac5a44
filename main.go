package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"autoshop-backend/config"
	"autoshop-backend/models"
	"autoshop-backend/routes"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}
	config.ConnectDB()

	if err := models.AutoMigrate(config.DB); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
}

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	r := routes.SetupRouter()
	printRoutes(r)

	logrus.Infof("Listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("Server stopped: %v", err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
