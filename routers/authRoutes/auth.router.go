package authRoutes

import (
	authControllers "ilmhub/controllers/auth"
	authValidators "ilmhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authControllers.Login)
	authGroup.Post("/send/otp", authControllers.SendOTP)
	authGroup.Patch("/verify/otp", authControllers.VerifyOTP)
}
