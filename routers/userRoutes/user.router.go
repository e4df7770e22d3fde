package userRoutes

import (
	dashboardController "barasho/controllers/dashboard"
	"barasho/middleware"
	validators "barasho/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the learner dashboard routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user", middleware.JWTMiddleware)

	userGroup.Get("/dashboard", dashboardController.GetUserDashboard)
	userGroup.Get("/course/:id/first-lesson", validators.CourseID(), dashboardController.GetFirstLesson)
}
