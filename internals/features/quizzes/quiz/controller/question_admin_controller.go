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

type QuestionAdminController struct {
	DB *gorm.DB
}

func NewQuestionAdminController(db *gorm.DB) *QuestionAdminController {
	return &QuestionAdminController{DB: db}
}

// =============================
// 📄 Get All Questions
// =============================
func (ctrl *QuestionAdminController) GetAllQuestions(c *fiber.Ctx) error {
	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data soal")
	}

	result := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		result = append(result, dto.ToQuizQuestionDTO(q, false))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Question By ID
// =============================
func (ctrl *QuestionAdminController) GetQuestionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&question, "question_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	return helper.JsonOK(c, "OK", dto.ToQuizQuestionDTO(question, false))
}

// =============================
// 🔍 Get Questions By Quiz ID (dengan opsi)
// =============================
func (ctrl *QuestionAdminController) GetQuestionsByQuizID(c *fiber.Ctx) error {
	quizIDStr := c.Params("quizId")
	if _, err := uuid.Parse(quizIDStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var questions []model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Options").
		Where("question_quiz_id = ?", quizIDStr).
		Order("question_created_at ASC").
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data soal")
	}

	result := make([]dto.QuizQuestionDTO, 0, len(questions))
	for _, q := range questions {
		result = append(result, dto.ToQuizQuestionDTO(q, true))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// ➕ Create Question
// =============================
func (ctrl *QuestionAdminController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	quizID, _ := uuid.Parse(body.QuizID)
	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizModel{}).
		Where("quiz_id = ?", quizID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa quiz")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}

	question := model.QuizQuestionModel{
		QuestionText:   body.Question,
		QuestionType:   body.QuestionType,
		QuestionQuizID: quizID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&question).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat soal")
	}

	return helper.JsonCreated(c, "Question created", dto.ToQuizQuestionDTO(question, false))
}

// =============================
// ✏️ Update Question By ID
// =============================
func (ctrl *QuestionAdminController) UpdateQuestionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var question model.QuizQuestionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&question, "question_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil soal")
	}

	updates := map[string]any{}
	if body.Question != nil {
		updates["question_text"] = *body.Question
	}
	if body.QuestionType != nil {
		updates["question_type"] = *body.QuestionType
	}
	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&question).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update soal")
		}
	}

	return helper.JsonUpdated(c, "Question updated", dto.ToQuizQuestionDTO(question, false))
}

// =============================
// 🗑️ Delete Question By ID
// =============================
func (ctrl *QuestionAdminController) DeleteQuestionByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.QuizQuestionModel{}, "question_id = ?", idStr)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus soal")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}

	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"id": idStr})
}
