package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/techlearn/techlearn-backend/src/lib"
	"github.com/techlearn/techlearn-backend/src/models"
)

// Upgrade gates the websocket handshake: the token travels in the query
// string and the decoded principal is stashed in locals for the handler.
func Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	principal, err := lib.VerifyJWT(c.Query("token"))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	c.Locals("userId", principal.ID)
	c.Locals("role", principal.Role)
	return c.Next()
}

// Handler returns the websocket connection handler bound to the hub. The
// read pump runs on the handler goroutine; the write pump runs beside it.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("userId").(primitive.ObjectID)
		if !ok {
			conn.Close()
			return
		}
		role, ok := conn.Locals("role").(models.Role)
		if !ok {
			conn.Close()
			return
		}

		client := newClient(hub, conn, userID, role)
		hub.Register(client)

		go client.writePump()
		client.readPump()
	})
}
