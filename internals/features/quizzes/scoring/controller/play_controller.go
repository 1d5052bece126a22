package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"triviaku_backend/internals/features/quizzes/scoring/service"
	helper "triviaku_backend/internals/helpers"
)

type PlayController struct {
	DB      *gorm.DB
	Scoring *service.ScoringService
}

func NewPlayController(db *gorm.DB) *PlayController {
	return &PlayController{
		DB:      db,
		Scoring: service.NewScoringService(db),
	}
}

type playQuizRequest struct {
	Answers []service.Answer `json:"answers"`
}

// =============================
// 🎮 Play Quiz (nilai jawaban, simpan skor)
// =============================
func (ctrl *PlayController) PlayQuiz(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	userIDStr, _ := c.Locals("user_id").(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var body playQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if body.Answers == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Field 'answers' wajib berupa array")
	}

	result, err := ctrl.Scoring.ScoreQuiz(c.UserContext(), quizID, userID, body.Answers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuizNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		case errors.Is(err, service.ErrQuizHasNoQuestions):
			return helper.JsonValidationError(c, map[string][]string{
				"quiz": {"Quiz belum punya soal, tidak bisa dimainkan"},
			})
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menilai quiz")
		}
	}

	return helper.JsonOK(c, "Quiz played successfully", result)
}
