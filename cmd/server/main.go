package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anaskhan28/calorie-guy/internal/ai"
	"github.com/anaskhan28/calorie-guy/internal/config"
	"github.com/anaskhan28/calorie-guy/internal/database"
	"github.com/anaskhan28/calorie-guy/internal/routes"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2. Connect to Database (optional; profiles stay in memory without it)
	var db *pgxpool.Pool
	if cfg.DBUrl != "" {
		db, err = database.Connect(ctx, cfg.DBUrl)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		log.Println("Connected to PostgreSQL")
	} else {
		log.Println("DB_URL not set, using in-memory profile store")
	}

	// 3. AI Gateway
	gateway, err := ai.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	// 4. Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(cors.New())
	app.Use(logger.New())
	app.Use(recover.New())

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
	scheduler := routes.RegisterRoutes(app, cfg, db, gateway)
	go scheduler.Run(ctx)

	// 5. Start Server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
