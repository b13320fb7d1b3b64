package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// UploadRoutes sets up the generic file upload used for message attachments.
func UploadRoutes(app *fiber.App) {
	app.Post("/api/upload", middleware.Protect, controllers.UploadFile)
}
