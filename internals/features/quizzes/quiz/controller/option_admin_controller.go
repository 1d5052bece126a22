package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"triviaku_backend/internals/features/quizzes/quiz/dto"
	"triviaku_backend/internals/features/quizzes/quiz/model"
	helper "triviaku_backend/internals/helpers"
)

type OptionAdminController struct {
	DB *gorm.DB
}

func NewOptionAdminController(db *gorm.DB) *OptionAdminController {
	return &OptionAdminController{DB: db}
}

// =============================
// 📄 Get All Options
// =============================
func (ctrl *OptionAdminController) GetAllOptions(c *fiber.Ctx) error {
	var options []model.QuizOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("option_created_at ASC").
		Find(&options).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data opsi")
	}

	result := make([]dto.QuizOptionDTO, 0, len(options))
	for _, o := range options {
		result = append(result, dto.ToQuizOptionDTO(o))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Option By ID
// =============================
func (ctrl *OptionAdminController) GetOptionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var option model.QuizOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&option, "option_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Option not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi")
	}

	return helper.JsonOK(c, "OK", dto.ToQuizOptionDTO(option))
}

// =============================
// ➕ Create Option
// =============================
func (ctrl *OptionAdminController) CreateOption(c *fiber.Ctx) error {
	var body dto.CreateOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	questionID, _ := uuid.Parse(body.QuestionID)
	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizQuestionModel{}).
		Where("question_id = ?", questionID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa soal")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	option := model.QuizOptionModel{
		OptionText:       body.Text,
		OptionIsCorrect:  body.IsCorrect,
		OptionQuestionID: questionID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&option).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat opsi")
	}

	return helper.JsonCreated(c, "Option created", dto.ToQuizOptionDTO(option))
}

// =============================
// ✏️ Update Option By ID
// =============================
func (ctrl *OptionAdminController) UpdateOptionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateOptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var option model.QuizOptionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&option, "option_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Option not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil opsi")
	}

	updates := map[string]any{}
	if body.Text != nil {
		updates["option_text"] = *body.Text
	}
	if body.IsCorrect != nil {
		updates["option_is_correct"] = *body.IsCorrect
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&option).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update opsi")
		}
	}

	return helper.JsonUpdated(c, "Option updated", dto.ToQuizOptionDTO(option))
}

// =============================
// 🗑️ Delete Option By ID
// =============================
func (ctrl *OptionAdminController) DeleteOptionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.QuizOptionModel{}, "option_id = ?", idStr)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus opsi")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Option not found")
	}

	return helper.JsonDeleted(c, "Option deleted", fiber.Map{"id": idStr})
}
