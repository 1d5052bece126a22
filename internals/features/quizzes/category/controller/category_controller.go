package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"triviaku_backend/internals/features/quizzes/category/dto"
	"triviaku_backend/internals/features/quizzes/category/model"
	helper "triviaku_backend/internals/helpers"
)

type QuizCategoryController struct {
	DB *gorm.DB
}

func NewQuizCategoryController(db *gorm.DB) *QuizCategoryController {
	return &QuizCategoryController{DB: db}
}

var validate = validator.New()

// =============================
// 📄 Get All Categories
// =============================
func (ctrl *QuizCategoryController) GetAllCategories(c *fiber.Ctx) error {
	var categories []model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("quiz_category_created_at ASC").
		Find(&categories).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kategori")
	}

	result := make([]dto.QuizCategoryDTO, 0, len(categories))
	for _, cat := range categories {
		result = append(result, dto.ToQuizCategoryDTO(cat))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Category By ID
// =============================
func (ctrl *QuizCategoryController) GetCategoryByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var category model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&category, "quiz_category_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	return helper.JsonOK(c, "OK", dto.ToQuizCategoryDTO(category))
}

// =============================
// ➕ Create Category
// =============================
func (ctrl *QuizCategoryController) CreateCategory(c *fiber.Ctx) error {
	var body dto.CreateQuizCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	category := model.QuizCategoryModel{
		QuizCategoryName: body.Name,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kategori")
	}

	return helper.JsonCreated(c, "Category created", dto.ToQuizCategoryDTO(category))
}

// =============================
// ✏️ Update Category By ID
// =============================
func (ctrl *QuizCategoryController) UpdateCategoryByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateQuizCategoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var category model.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&category, "quiz_category_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	category.QuizCategoryName = body.Name
	if err := ctrl.DB.WithContext(c.UserContext()).Save(&category).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update kategori")
	}

	return helper.JsonUpdated(c, "Category updated", dto.ToQuizCategoryDTO(category))
}

// =============================
// 🗑️ Delete Category By ID (cascade ke quiz di bawahnya)
// =============================
func (ctrl *QuizCategoryController) DeleteCategoryByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.QuizCategoryModel{}, "quiz_category_id = ?", idStr)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kategori")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}

	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"id": idStr})
}
