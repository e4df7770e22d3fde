package courseRoutes

import (
	controllers "barasho/controllers/course"
	paymentController "barasho/controllers/payment"
	"barasho/middleware"
	validators "barasho/validators/course"
	paymentValidators "barasho/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the admin console routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Course CRUD
	courseGroup := adminGroup.Group("/course")
	courseGroup.Post("/create", validators.CreateCourseAdmin(), controllers.AdminCreateCourse)
	courseGroup.Get("/list", controllers.AdminGetAllCourses)
	courseGroup.Put("/:id", validators.UpdateCourseAdmin(), controllers.AdminUpdateCourse)
	courseGroup.Delete("/:id", validators.CourseID(), controllers.AdminDeleteCourse)

	// Lesson management
	courseGroup.Post("/:id/lesson", validators.CreateLessonAdmin(), controllers.AdminCreateLesson)
	courseGroup.Get("/:id/lessons", validators.CourseID(), controllers.AdminListLessons)

	lessonGroup := adminGroup.Group("/lesson")
	lessonGroup.Put("/:id", validators.UpdateLessonAdmin(), controllers.AdminUpdateLesson)
	lessonGroup.Delete("/:id", validators.LessonID(), controllers.AdminDeleteLesson)

	// Payment review
	paymentGroup := adminGroup.Group("/payment")
	paymentGroup.Get("/list", paymentController.AdminListPayments)
	paymentGroup.Post("/:id/approve", paymentValidators.ReviewPayment(), paymentController.AdminApprovePayment)
	paymentGroup.Post("/:id/reject", paymentValidators.ReviewPayment(), paymentController.AdminRejectPayment)
	paymentGroup.Post("/:id/cancel", paymentValidators.ReviewPayment(), paymentController.AdminCancelPayment)

	// Dashboard
	adminGroup.Get("/dashboard/stats", paymentController.AdminDashboardStats)
}
