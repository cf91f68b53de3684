package main

import (
	"ilmhub/config"
	"ilmhub/database"
	adminRoutes "ilmhub/routers/adminRoutes"
	authRoutes "ilmhub/routers/authRoutes"
	catalogRoutes "ilmhub/routers/catalogRoutes"
	enrollmentRoutes "ilmhub/routers/enrollmentRoutes"
	userRoutes "ilmhub/routers/userRoutes"
	"ilmhub/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly completion reconciliation
	utils.InitializeProgressScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
