package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
	"triviaku_backend/internals/features/quizzes/quiz/dto"
	"triviaku_backend/internals/features/quizzes/quiz/model"
	helper "triviaku_backend/internals/helpers"
)

type QuizPlayerController struct {
	DB *gorm.DB
}

func NewQuizPlayerController(db *gorm.DB) *QuizPlayerController {
	return &QuizPlayerController{DB: db}
}

// row hasil join dengan jumlah main per quiz
type quizWithPlayCount struct {
	model.QuizModel
	PlayCount int64 `gorm:"column:play_count"`
}

// =============================
// 📄 Get Quizzes (filter: categoryId, played, mostPlayed, news, oldest)
// =============================
func (ctrl *QuizPlayerController) GetQuizzes(c *fiber.Ctx) error {
	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.QuizModel{}).
		Select("quizzes.*, (SELECT COUNT(*) FROM quiz_scores s WHERE s.quiz_score_quiz_id = quizzes.quiz_id) AS play_count")

	if categoryID := c.Query("categoryId"); categoryID != "" {
		if _, err := uuid.Parse(categoryID); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "categoryId tidak valid")
		}
		q = q.Where("quiz_category_id = ?", categoryID)
	}

	// played=true: hanya quiz yang pernah dimainkan siapa pun
	if c.Query("played") != "" {
		q = q.Where("EXISTS (SELECT 1 FROM quiz_scores s WHERE s.quiz_score_quiz_id = quizzes.quiz_id)")
	}

	ordered := false
	if c.Query("mostPlayed") != "" {
		q = q.Order("play_count DESC")
		ordered = true
	}
	switch {
	case c.Query("news") != "":
		q = q.Order("quiz_created_at DESC")
		ordered = true
	case c.Query("oldest") != "":
		q = q.Order("quiz_created_at ASC")
		ordered = true
	}
	if !ordered {
		q = q.Order("quiz_created_at DESC")
	}

	var rows []quizWithPlayCount
	if err := q.Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data quiz")
	}

	result := make([]dto.PlayerQuizListItemDTO, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.PlayerQuizListItemDTO{
			QuizID:          row.QuizID,
			QuizTitle:       row.QuizTitle,
			QuizDescription: row.QuizDescription,
			QuizDifficulty:  row.QuizDifficulty,
			QuizCategoryID:  row.QuizCategoryID,
			QuizCreatedAt:   row.QuizCreatedAt,
			PlayCount:       row.PlayCount,
		})
	}
	return helper.JsonOK(c, "OK", result)
}

// =============================
// 🔍 Get Quiz By ID (tanpa flag jawaban benar)
// =============================
func (ctrl *QuizPlayerController) GetQuizByID(c *fiber.Ctx) error {
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

	var category categoryModel.QuizCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		First(&category, "quiz_category_id = ?", quiz.QuizCategoryID).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kategori")
	}

	detail := dto.PlayerQuizDetailDTO{
		QuizID:          quiz.QuizID,
		QuizTitle:       quiz.QuizTitle,
		QuizDescription: quiz.QuizDescription,
		QuizDifficulty:  quiz.QuizDifficulty,
		CategoryID:      quiz.QuizCategoryID,
		CategoryName:    category.QuizCategoryName,
		Questions:       make([]dto.PlayerQuestionDTO, 0, len(quiz.Questions)),
	}
	for _, question := range quiz.Questions {
		detail.Questions = append(detail.Questions, dto.ToPlayerQuestionDTO(question))
	}

	return helper.JsonOK(c, "OK", detail)
}
