package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/lib"
)

// Protect checks for a valid JWT token and attaches the decoded principal to
// the request context under "principal".
func Protect(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("No token provided, authorization denied"))
	}

	// Expected format: "Bearer <token>"
	var token string
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		token = authHeader[7:]
	} else {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Invalid token format"))
	}

	principal, err := lib.VerifyJWT(token)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(lib.MessageResponse("Token is not valid"))
	}

	c.Locals("principal", principal)

	return c.Next()
}
