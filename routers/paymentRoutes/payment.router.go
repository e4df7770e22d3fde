package paymentRoutes

import (
	paymentController "barasho/controllers/payment"
	"barasho/middleware"
	paymentValidator "barasho/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up learner-facing payment routes
func SetupPaymentRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	courseGroup.Post("/:id/payment", middleware.JWTMiddleware, paymentValidator.SubmitPayment(), paymentController.SubmitPayment)
	courseGroup.Get("/:id/payment", middleware.JWTMiddleware, paymentValidator.PaymentStatus(), paymentController.GetPaymentStatus)
}
