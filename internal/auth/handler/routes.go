package handler

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler) {
	app.Post("api/v1/auth/send-verification", h.SendVerification)
	app.Post("api/v1/auth/verify-email", h.VerifyEmail)
	app.Post("api/v1/auth/forgot-password", h.ForgotPassword)
	app.Post("api/v1/auth/reset-password", h.ResetPassword)
	app.Post("api/v1/auth/refresh", h.Refresh)
	app.Delete("api/v1/session", h.Logout)
}
