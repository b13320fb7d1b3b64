package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/techlearn/techlearn-backend/src/controllers"
	"github.com/techlearn/techlearn-backend/src/middleware"
)

// StudentRoutes sets up registration, login, profile, browse, dashboard and
// upload routes for students.
func StudentRoutes(app *fiber.App) {
	student := app.Group("/api/students")

	student.Post("/register", controllers.RegisterStudent)
	student.Post("/login", controllers.LoginStudent)
	student.Get("/profile", middleware.Protect, controllers.GetStudentProfile)
	student.Put("/profile", middleware.Protect, controllers.UpdateStudentProfile)
	student.Post("/upload-resume", middleware.Protect, controllers.UploadStudentResume)
	student.Post("/upload-profile-picture", middleware.Protect, controllers.UploadStudentProfilePicture)
	student.Get("/browse", middleware.Protect, controllers.BrowseStudents)
	student.Get("/dashboard", middleware.Protect, controllers.GetStudentDashboard)
}
