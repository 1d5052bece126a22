package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "triviaku_backend/internals/features/users/auth/helper"
	authRepo "triviaku_backend/internals/features/users/auth/repository"
	"triviaku_backend/internals/features/users/auth/service"
	helpers "triviaku_backend/internals/helpers"
)

type OTPController struct {
	DB  *gorm.DB
	OTP *service.OTPService
}

func NewOTPController(db *gorm.DB, otp *service.OTPService) *OTPController {
	return &OTPController{DB: db, OTP: otp}
}

// =============================
// ✉️ Request OTP
// POST /auth/otp/request  { email, purpose? }
// =============================
func (ctrl *OTPController) RequestOTP(c *fiber.Ctx) error {
	var input struct {
		Email   string `json:"email"`
		Purpose string `json:"purpose"` // "register" | "login" | kosong
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Email == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email is required")
	}
	if !authHelper.IsValidEmail(input.Email) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid email format")
	}

	// purpose register → email belum boleh terdaftar; login → harus terdaftar
	if input.Purpose == "register" || input.Purpose == "login" {
		exists, err := authRepo.EmailExists(ctrl.DB.WithContext(c.UserContext()), input.Email)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if input.Purpose == "register" && exists {
			return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		if input.Purpose == "login" && !exists {
			return helpers.JsonError(c, fiber.StatusNotFound, "Email not found")
		}
	}

	if err := ctrl.OTP.RequestCode(c.UserContext(), input.Email); err != nil {
		if errors.Is(err, service.ErrDeliveryFailed) {
			// Record-nya tetap tersimpan; ke caller tetap error supaya user tahu emailnya tidak sampai
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Error sending OTP")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error sending OTP")
	}

	return helpers.JsonOK(c, "OTP sent successfully to your email", nil)
}

// =============================
// ✅ Verify OTP
// POST /auth/otp/verify  { email, code }
// =============================
func (ctrl *OTPController) VerifyOTP(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Email == "" || input.Code == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email and code are required")
	}

	valid, err := ctrl.OTP.VerifyCode(c.UserContext(), input.Email, input.Code)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error verifying OTP")
	}
	if !valid {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid or expired OTP code")
	}

	return helpers.JsonOK(c, "OTP verified successfully", fiber.Map{"verified": true})
}

// =============================
// 🔎 Check OTP (tanpa mutasi)
// POST /auth/otp/check  { email }
// =============================
func (ctrl *OTPController) CheckOTP(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.Email == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Email is required")
	}

	hasValid, err := ctrl.OTP.HasValidCode(c.UserContext(), input.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Error checking OTP")
	}

	return helpers.JsonOK(c, "OK", fiber.Map{"has_valid_otp": hasValid})
}
