package route

import (
	authController "triviaku_backend/internals/features/users/auth/controller"
	"triviaku_backend/internals/features/users/auth/service"
	"triviaku_backend/internals/helpers/mailer"
	"triviaku_backend/internals/middlewares"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	authCtrl := authController.NewAuthController(db)
	otpCtrl := authController.NewOTPController(db, service.NewOTPService(db, mailer.NewMailer()))

	auth := api.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), authCtrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), authCtrl.Login)
	auth.Post("/login-google", middlewares.LoginRateLimiter(), authCtrl.LoginGoogle)
	auth.Get("/profile", authMiddleware.AuthMiddleware(db), authCtrl.Me)

	otp := auth.Group("/otp")
	otp.Post("/request", middlewares.OTPRequestRateLimiter(), otpCtrl.RequestOTP)
	otp.Post("/verify", otpCtrl.VerifyOTP)
	otp.Post("/check", otpCtrl.CheckOTP)
}
