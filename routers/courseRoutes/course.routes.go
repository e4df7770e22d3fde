package courseRoutes

import (
	controllers "barasho/controllers/course"
	"barasho/middleware"
	validators "barasho/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course routes
func SetupCourseRoutes(app *fiber.App) {
	userGroup := app.Group("/course")

	// Catalog and detail are public; a token unlocks the access flag
	userGroup.Get("/list", controllers.GetAllCourses)
	userGroup.Get("/:id", middleware.OptionalJWT, validators.CourseID(), controllers.GetCourseDetails)

	// Lesson player requires ownership
	userGroup.Get("/:course_id/lesson/:lesson_id", middleware.JWTMiddleware, validators.LessonRoute(), controllers.GetLesson)
}
