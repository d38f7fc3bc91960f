package main

import (
	"Backend-Catequesis/src/database"
	"Backend-Catequesis/src/routes"
	"Backend-Catequesis/src/seeder"
	"Backend-Catequesis/src/utils"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
)

func main() {

	// Conexión a MongoDB (una sola vez por proceso)
	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Datos iniciales opcionales
	if os.Getenv("SEED_SAMPLE_DATA") == "true" {
		if err := seeder.SeedDatosEjemplo(); err != nil {
			log.Println("Warning: no se pudieron cargar los datos de ejemplo:", err)
		}
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail != "" && adminPassword != "" {
		if err := seeder.SeedCatequistaAdmin(adminEmail, adminPassword); err != nil {
			log.Println("Warning: no se pudo crear el catequista admin:", err)
		}
	}

	// Motor de plantillas para las vistas del servidor
	engine := html.New("./src/views", ".html")
	engine.AddFunc("idstr", utils.KeyString)

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})

	app.Use(logger.New())

	origins := os.Getenv("ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.InitRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Server is running on port " + port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
