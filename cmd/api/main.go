package main

import (
	"log"
	"os"
	"time"

	"github.com/richardGonza/orasLocal/internal/infrastructure/database"
	"github.com/richardGonza/orasLocal/internal/infrastructure/database/seeds"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/middleware"
	"github.com/richardGonza/orasLocal/internal/interfaces/http/routes"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	// Initialize database
	db, err := database.SetupDatabase()
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Datos iniciales solo bajo demanda
	if os.Getenv("SEED_DB") == "true" {
		if err := seeds.Run(db); err != nil {
			log.Fatalf("❌ Error seeding database: %v", err)
		}
	}

	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Prefork desactivado: inestable en contenedores
		Prefork:      false,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app)

	// Setup routes
	routes.SetupRoutes(app, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server is running on port %s", port)
	log.Fatal(app.Listen(":" + port))
}
