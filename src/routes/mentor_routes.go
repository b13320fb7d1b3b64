package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// MentorRoutes sets up registration, login, profile and browse routes for
// mentors.
func MentorRoutes(app *fiber.App) {
	mentor := app.Group("/api/mentors")

	mentor.Post("/register", controllers.RegisterMentor)
	mentor.Post("/login", controllers.LoginMentor)
	mentor.Get("/profile", middleware.Protect, controllers.GetMentorProfile)
	mentor.Put("/profile", middleware.Protect, controllers.UpdateMentorProfile)
	mentor.Get("/browse", middleware.Protect, controllers.BrowseMentors)
}
