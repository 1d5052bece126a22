package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
	"triviaku_backend/internals/features/quizzes/quiz/dto"
	"triviaku_backend/internals/features/quizzes/quiz/model"
	helper "triviaku_backend/internals/helpers"
)

type QuizAdminController struct {
	DB *gorm.DB
}

func NewQuizAdminController(db *gorm.DB) *QuizAdminController {
	return &QuizAdminController{DB: db}
}

var validate = validator.New()

// currentUserID mengambil user_id dari Locals (diisi AuthMiddleware).
func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

// ensureCategoryExists: FK check di muka supaya error-nya jelas (404, bukan 500).
func (ctrl *QuizAdminController) ensureCategoryExists(c *fiber.Ctx, id uuid.UUID) error {
	var count int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&categoryModel.QuizCategoryModel{}).
		Where("quiz_category_id = ?", id).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa kategori")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Category not found")
	}
	return nil
}

// =============================
// 📄 Get All Quizzes
// =============================
func (ctrl *QuizAdminController) GetAllQuizzes(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("quiz_created_at ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	result := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, dto.ToQuizDTO(q, false, false))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "OK", result, &pg)
}

// =============================
// 📄 Get All Quizzes + Questions
// =============================
func (ctrl *QuizAdminController) GetAllQuizzesWithQuestions(c *fiber.Ctx) error {
	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Questions").
		Order("quiz_created_at ASC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	result := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, dto.ToQuizDTO(q, true, false))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 📄 Get All Quizzes + Questions + Answers
// =============================
func (ctrl *QuizAdminController) GetAllQuizzesWithQuestionsAndAnswers(c *fiber.Ctx) error {
	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Questions.Options").
		Order("quiz_created_at ASC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	result := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, dto.ToQuizDTO(q, true, true))
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Quiz By ID (lengkap dengan soal & opsi)
// =============================
func (ctrl *QuizAdminController) GetQuizByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Questions.Options").
		First(&quiz, "quiz_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	return helper.JsonOK(c, "OK", dto.ToQuizDTO(quiz, true, true))
}

// =============================
// ➕ Create Quiz (tanpa soal)
// =============================
func (ctrl *QuizAdminController) CreateQuiz(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// endpoint ini khusus quiz polosan, soal lewat /with-questions
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if _, hasQuestions := raw["questions"]; hasQuestions {
		return helper.JsonError(c, fiber.StatusBadRequest,
			"To create quiz with questions, use POST /quizzes/with-questions")
	}

	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	categoryID, _ := uuid.Parse(body.CategoryID)
	if err := ctrl.ensureCategoryExists(c, categoryID); err != nil {
		return err
	}

	quiz := model.QuizModel{
		QuizTitle:       body.Title,
		QuizDescription: body.Description,
		QuizDifficulty:  body.Difficulty,
		QuizCategoryID:  categoryID,
		QuizUserID:      userID,
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat quiz")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizDTO(quiz, false, false))
}

// =============================
// ➕ Create Quiz + Questions (transaksi)
// =============================
func (ctrl *QuizAdminController) CreateQuizWithQuestions(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateQuizWithQuestionsRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	categoryID, _ := uuid.Parse(body.CategoryID)
	if err := ctrl.ensureCategoryExists(c, categoryID); err != nil {
		return err
	}

	quiz := model.QuizModel{
		QuizTitle:       body.Title,
		QuizDescription: body.Description,
		QuizDifficulty:  body.Difficulty,
		QuizCategoryID:  categoryID,
		QuizUserID:      userID,
	}
	for _, q := range body.Questions {
		quiz.Questions = append(quiz.Questions, model.QuizQuestionModel{
			QuestionText: q.Question,
			QuestionType: q.QuestionType,
		})
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz with questions")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizDTO(quiz, true, false))
}

// =============================
// ➕ Create Quiz + Questions + Answers (transaksi)
// =============================
func (ctrl *QuizAdminController) CreateQuizWithQuestionsAndAnswers(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body dto.CreateQuizWithQuestionsAndAnswersRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if err := dto.ValidateTrueFalseShape(body.Questions); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"questions": {err.Error()},
		})
	}

	categoryID, _ := uuid.Parse(body.CategoryID)
	if err := ctrl.ensureCategoryExists(c, categoryID); err != nil {
		return err
	}

	quiz := model.QuizModel{
		QuizTitle:       body.Title,
		QuizDescription: body.Description,
		QuizDifficulty:  body.Difficulty,
		QuizCategoryID:  categoryID,
		QuizUserID:      userID,
	}
	for _, q := range body.Questions {
		question := model.QuizQuestionModel{
			QuestionText: q.Question,
			QuestionType: q.QuestionType,
		}
		for _, o := range q.Options {
			question.Options = append(question.Options, model.QuizOptionModel{
				OptionText:      o.Text,
				OptionIsCorrect: o.IsCorrect,
			})
		}
		quiz.Questions = append(quiz.Questions, question)
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz with questions and answers")
	}

	return helper.JsonCreated(c, "Quiz created", dto.ToQuizDTO(quiz, true, true))
}

// =============================
// ✏️ Update Quiz By ID
// =============================
func (ctrl *QuizAdminController) UpdateQuizByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var quiz model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&quiz, "quiz_id = ?", idStr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil quiz")
	}

	updates := map[string]any{}
	if body.Title != nil {
		updates["quiz_title"] = *body.Title
	}
	if body.Description != nil {
		updates["quiz_description"] = *body.Description
	}
	if body.Difficulty != nil {
		updates["quiz_difficulty"] = *body.Difficulty
	}
	if body.CategoryID != nil {
		categoryID, _ := uuid.Parse(*body.CategoryID)
		if err := ctrl.ensureCategoryExists(c, categoryID); err != nil {
			return err
		}
		updates["quiz_category_id"] = categoryID
	}

	if len(updates) > 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).
			Model(&quiz).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update quiz")
		}
	}

	return helper.JsonUpdated(c, "Quiz updated", dto.ToQuizDTO(quiz, false, false))
}

// =============================
// 🗑️ Delete Quiz By ID (soal & opsi ikut terhapus)
// =============================
func (ctrl *QuizAdminController) DeleteQuizByID(c *fiber.Ctx) error {
	idStr := c.Params("id")
	if _, err := uuid.Parse(idStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).
		Delete(&model.QuizModel{}, "quiz_id = ?", idStr)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus quiz")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
	}

	return helper.JsonDeleted(c, "Quiz deleted", fiber.Map{"id": idStr})
}

// =============================
// 🔍 Get Quizzes By Category (lengkap)
// =============================
func (ctrl *QuizAdminController) GetQuizzesByCategoryID(c *fiber.Ctx) error {
	categoryIDStr := c.Params("categoryId")
	if _, err := uuid.Parse(categoryIDStr); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var quizzes []model.QuizModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Questions.Options").
		Where("quiz_category_id = ?", categoryIDStr).
		Order("quiz_created_at ASC").
		Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	result := make([]dto.QuizDTO, 0, len(quizzes))
	for _, q := range quizzes {
		result = append(result, dto.ToQuizDTO(q, true, true))
	}
	return helper.JsonOK(c, "OK", result)
}
