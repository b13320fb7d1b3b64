package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// RecruiterRoutes sets up registration, login, profile, browse, dashboard
// and upload routes for recruiters.
func RecruiterRoutes(app *fiber.App) {
	recruiter := app.Group("/api/recruiters")

	recruiter.Post("/register", controllers.RegisterRecruiter)
	recruiter.Post("/login", controllers.LoginRecruiter)
	recruiter.Get("/profile", middleware.Protect, controllers.GetRecruiterProfile)
	recruiter.Put("/profile", middleware.Protect, controllers.UpdateRecruiterProfile)
	recruiter.Post("/upload-logo", middleware.Protect, controllers.UploadRecruiterLogo)
	recruiter.Post("/upload-profile-picture", middleware.Protect, controllers.UploadRecruiterProfilePicture)
	recruiter.Get("/browse", middleware.Protect, controllers.BrowseRecruiters)
	recruiter.Get("/dashboard", middleware.Protect, controllers.GetRecruiterDashboard)
}
