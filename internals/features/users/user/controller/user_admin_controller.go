package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"triviaku_backend/internals/constants"
	authHelper "triviaku_backend/internals/features/users/auth/helper"
	"triviaku_backend/internals/features/users/user/dto"
	"triviaku_backend/internals/features/users/user/model"
	helper "triviaku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

var validate = validator.New()

// uniqueViolation: 23505 = duplicate key (email / google_id)
func uniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// =============================
// 📄 Get All Users (paginated)
// =============================
func (ctrl *UserAdminController) GetAllUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.UserModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	var users []model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("created_at DESC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	result := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, dto.ToUserDTO(u))
	}

	pagination := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "OK", result, &pagination)
}

// =============================
// 🔍 Get User By ID
// =============================
func (ctrl *UserAdminController) GetUserByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&user, "id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	return helper.JsonOK(c, "OK", dto.ToUserDTO(user))
}

// =============================
// ➕ Create User
// =============================
func (ctrl *UserAdminController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	hash, err := authHelper.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := model.UserModel{
		UserName: body.UserName,
		Email:    body.Email,
		Password: &hash,
		Role:     body.Role,
		IsActive: true,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&user).Error; err != nil {
		if uniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
	}

	return helper.JsonCreated(c, "User created", dto.ToUserDTO(user))
}

// =============================
// ✏️ Update User By ID (partial)
// =============================
func (ctrl *UserAdminController) UpdateUserByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var user model.UserModel
	if err := ctrl.DB.WithContext(c.UserContext()).First(&user, "id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	updates := map[string]interface{}{}
	if body.UserName != nil {
		updates["user_name"] = *body.UserName
	}
	if body.Email != nil {
		updates["email"] = *body.Email
	}
	if body.Role != nil {
		updates["role"] = *body.Role
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.ToUserDTO(user))
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&user).Updates(updates).Error; err != nil {
		if uniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already registered")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update user")
	}

	return helper.JsonUpdated(c, "User updated", dto.ToUserDTO(user))
}

// =============================
// 🗑️ Delete User By ID
// =============================
func (ctrl *UserAdminController) DeleteUserByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Delete(&model.UserModel{}, "id = ?", idStr)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted", fiber.Map{"id": idStr})
}

// =============================
// 🏷️ Get Roles (fixed set, tidak bisa dibuat lewat API)
// =============================
func (ctrl *UserAdminController) GetRoles(c *fiber.Ctx) error {
	return helper.JsonOK(c, "OK", constants.AllRoles)
}
