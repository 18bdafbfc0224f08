package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mojalektira/backend/config"
	"github.com/mojalektira/backend/middleware"
	"github.com/mojalektira/backend/routes"
	"github.com/mojalektira/backend/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env fajl nije pronađen")
	}

	config.InitDB()

	// Jednokratno dopunjavanje naslovnica koje nedostaju.
	if os.Getenv("FETCH_MISSING_COVERS") == "true" {
		services.FetchMissingCovers(config.DB)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-CSRF-Token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	store := middleware.NewGormSessionStore(config.DB)
	r = routes.SetupRouter(r, config.DB, store)

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	r.Static("/uploads", uploadDir)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server sluša na portu " + port)
	r.Run(":" + port)
}
