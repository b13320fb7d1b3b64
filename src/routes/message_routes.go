package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// MessageRoutes sets up the request/response side of messaging: history,
// read receipts, and the unread counter. Delivery itself happens over the
// websocket relay.
func MessageRoutes(app *fiber.App) {
	message := app.Group("/api/messages", middleware.Protect)

	// /unread/count before /:userId so it is not captured as a user ID.
	message.Get("/unread/count", controllers.GetUnreadCount)
	message.Get("/:userId", controllers.GetMessages)
	message.Put("/:userId/read", controllers.MarkMessagesRead)
}
