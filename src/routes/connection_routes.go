package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// ConnectionRoutes sets up routes for sending connection requests, accepting
// or rejecting them, and listing the caller's connections.
func ConnectionRoutes(app *fiber.App) {
	connection := app.Group("/api/connections", middleware.Protect)

	connection.Post("/request", controllers.CreateConnectionRequest)
	connection.Get("/my-connections", controllers.GetMyConnections)
	connection.Put("/:connectionId", controllers.UpdateConnectionStatus)
}
