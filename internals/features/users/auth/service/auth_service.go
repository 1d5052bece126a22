package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"triviaku_backend/internals/configs"
	"triviaku_backend/internals/constants"
	authHelper "triviaku_backend/internals/features/users/auth/helper"
	authRepo "triviaku_backend/internals/features/users/auth/repository"
	userDTO "triviaku_backend/internals/features/users/user/dto"
	userModel "triviaku_backend/internals/features/users/user/model"
	helpers "triviaku_backend/internals/helpers"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		UserName string `json:"user_name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if err := authHelper.ValidateRegisterInput(input.UserName, input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	passwordHash, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName: input.UserName,
		Email:    input.Email,
		Password: &passwordHash,
		Role:     constants.RolePlayer,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helpers.JsonCreated(c, "Registration successful", userDTO.ToUserDTO(user))
}

/* ==========================
   LOGIN (password)
========================== */

// errInvalidCredentials: satu verdict untuk semua kegagalan kredensial.
var errInvalidCredentials = errors.New("invalid credentials")

// checkLoginCredentials memutuskan verdict login password untuk hasil lookup
// sebuah email. Email tidak ada, akun nonaktif, akun tanpa password, dan
// password salah semuanya dipetakan ke errInvalidCredentials yang sama persis,
// jadi tidak ada sinyal yang membocorkan keberadaan/jenis akun. Error lookup
// lain (DB down, dsb) diteruskan apa adanya.
func checkLoginCredentials(user *userModel.UserModel, findErr error, password string) error {
	if findErr != nil {
		if errors.Is(findErr, gorm.ErrRecordNotFound) {
			return errInvalidCredentials
		}
		return findErr
	}
	if !user.IsActive || !user.HasPassword() {
		return errInvalidCredentials
	}
	if err := authHelper.CheckPasswordHash(*user.Password, password); err != nil {
		return errInvalidCredentials
	}
	return nil
}

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := authHelper.ValidateLoginInput(input.Email, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	user, findErr := authRepo.FindUserByEmail(db, input.Email)
	if err := checkLoginCredentials(user, findErr, input.Password); err != nil {
		if errors.Is(err, errInvalidCredentials) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return issueToken(c, *user)
}

/* ==========================
   LOGIN GOOGLE
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if input.IDToken == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token is required")
	}

	// Verifikasi token Google
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid Google ID Token")
	}

	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to decode ID Token")
	}
	email, name, googleID := claimSet.Email, claimSet.Name, claimSet.Sub

	user, err := authRepo.FindUserByEmail(db, email)
	switch {
	case err == nil:
		if !user.IsActive {
			return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
		}
		// Login federated pertama untuk akun lama → link provider ID
		if user.GoogleID == nil || *user.GoogleID == "" {
			if err := authRepo.LinkGoogleID(db, user.ID, googleID); err != nil {
				log.Printf("[WARN] Gagal link google_id untuk %s: %v", user.ID, err)
			} else {
				user.GoogleID = &googleID
			}
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		// Upsert-on-first-login: login Google pertama sekaligus registrasi.
		// Tanpa password — jalur login password tertutup untuk akun ini.
		newUser := userModel.UserModel{
			UserName: name,
			Email:    email,
			Password: nil,
			GoogleID: &googleID,
			Role:     constants.RolePlayer,
			IsActive: true,
		}
		if err := authRepo.CreateUser(db, &newUser); err != nil {
			if isUniqueViolation(err) {
				return helpers.JsonError(c, fiber.StatusConflict, "Email already registered")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create Google user")
		}
		user = &newUser

	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return issueToken(c, *user)
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, ok := c.Locals("user_id").(string)
	if !ok {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	userUUID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid UUID format")
	}

	user, err := authRepo.FindUserByID(db, userUUID)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helpers.JsonOK(c, "OK", userDTO.ToUserDTO(*user))
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func issueToken(c *fiber.Ctx, user userModel.UserModel) error {
	now := nowUTC()
	accessToken, err := SignAccessToken(BuildAccessClaims(user, now))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat access token")
	}

	setAuthCookie(c, accessToken, now)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user":         userDTO.ToUserDTO(user),
		"access_token": accessToken,
	})
}

func setAuthCookie(c *fiber.Ctx, accessToken string, now time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  now.Add(AccessTokenTTL),
	})
}
