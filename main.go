package main

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/techlearn/techlearn-backend/src/config"
	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/routes"
	"github.com/techlearn/techlearn-backend/src/ws"
)

func main() {
	cfg := config.Load()

	lib.InitLogger(cfg.LogLevel, os.Getenv("APP_ENV") != "production")
	lib.SetJWTSecret(cfg.JWT.Secret)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.ClientURL,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	lib.ConnectDB(cfg.Mongo.URI, cfg.Mongo.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := lib.EnsureIndexes(ctx); err != nil {
		lib.Logger.Fatal().Err(err).Msg("Failed to create indexes")
	}
	cancel()

	if err := controllers.SetUploadDir(cfg.Upload.Dir); err != nil {
		lib.Logger.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	store := ws.NewMongoStore(lib.DB)
	hub := ws.NewHub(store, store, lib.Logger)

	// Register routes
	routes.StudentRoutes(app)
	routes.RecruiterRoutes(app)
	routes.MentorRoutes(app)
	routes.ConnectionRoutes(app)
	routes.MessageRoutes(app)
	routes.UploadRoutes(app)

	app.Get("/ws", ws.Upgrade, ws.Handler(hub))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "OK",
			"message":   "TechLearn API is running",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Serve uploaded files
	app.Static("/uploads", cfg.Upload.Dir)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(lib.MessageResponse("Route not found"))
	})

	lib.Logger.Info().Str("addr", cfg.Server.Addr()).Msg("Server is running")
	if err := app.Listen(cfg.Server.Addr()); err != nil {
		lib.Logger.Fatal().Err(err).Msg("Server stopped")
	}
}
