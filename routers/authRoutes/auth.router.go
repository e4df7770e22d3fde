package authRoutes

import (
	authController "barasho/controllers/auth"
	"barasho/middleware"
	authValidator "barasho/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidator.Signup(), authController.Signup)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
	authGroup.Get("/google", authController.GoogleLogin)
	authGroup.Get("/google/callback", authController.GoogleCallback)
	authGroup.Post("/logout", authController.Logout)
	authGroup.Get("/me", middleware.JWTMiddleware, authController.Me)
}
