package main

import (
	"log"

	"github.com/SacredMindInfotech/SacredMind-sub001/config"
	"github.com/SacredMindInfotech/SacredMind-sub001/database"
	categoryRoutes "github.com/SacredMindInfotech/SacredMind-sub001/routers/categoryRoutes"
	courseRoutes "github.com/SacredMindInfotech/SacredMind-sub001/routers/courseRoutes"
	discountRoutes "github.com/SacredMindInfotech/SacredMind-sub001/routers/discountRoutes"
	"github.com/SacredMindInfotech/SacredMind-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: config.AppConfig.MaxUploadSize * 1024 * 1024,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files (uploaded course content) from the public folder
	app.Static("/", "./public")

	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	discountRoutes.SetupDiscountRoutes(app)

	// Nightly sweep that deactivates expired discount tokens
	utils.InitializeDiscountScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
