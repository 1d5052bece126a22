package controller

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "triviaku_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// row join skor + quiz + kategori, dipakai stats dan history
type playedScoreRow struct {
	ScoreID         uuid.UUID `gorm:"column:quiz_score_id"`
	QuizID          uuid.UUID `gorm:"column:quiz_score_quiz_id"`
	Score           int       `gorm:"column:quiz_score_value"`
	PlayedAt        time.Time `gorm:"column:quiz_score_created_at"`
	QuizTitle       string    `gorm:"column:quiz_title"`
	QuizDescription string    `gorm:"column:quiz_description"`
	Difficulty      string    `gorm:"column:quiz_difficulty"`
	CategoryID      uuid.UUID `gorm:"column:quiz_category_id"`
	CategoryName    string    `gorm:"column:quiz_category_name"`
}

func (ctrl *StatsController) loadPlayerScores(c *fiber.Ctx, userID string) ([]playedScoreRow, error) {
	var rows []playedScoreRow
	err := ctrl.DB.WithContext(c.UserContext()).
		Table("quiz_scores").
		Select(`quiz_scores.quiz_score_id, quiz_scores.quiz_score_quiz_id,
			quiz_scores.quiz_score_value, quiz_scores.quiz_score_created_at,
			quizzes.quiz_title, quizzes.quiz_description, quizzes.quiz_difficulty,
			quizzes.quiz_category_id, quiz_categories.quiz_category_name`).
		Joins("JOIN quizzes ON quizzes.quiz_id = quiz_scores.quiz_score_quiz_id").
		Joins("JOIN quiz_categories ON quiz_categories.quiz_category_id = quizzes.quiz_category_id").
		Where("quiz_scores.quiz_score_user_id = ?", userID).
		Order("quiz_scores.quiz_score_created_at DESC").
		Find(&rows).Error
	return rows, err
}

type categoryStat struct {
	Total   int `json:"total"`
	Count   int `json:"count"`
	Average int `json:"average"`
}

type recentQuizEntry struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	QuizTitle    string    `json:"quiz_title"`
	CategoryName string    `json:"category_name"`
	Score        int       `json:"score"`
	PlayedAt     time.Time `json:"played_at"`
}

// =============================
// 📊 Player Stats
// =============================
func (ctrl *StatsController) GetPlayerStats(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := ctrl.loadPlayerScores(c, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik")
	}

	totalPlayed := len(rows)
	totalScore := 0
	best, worst := 0, 0
	if totalPlayed > 0 {
		best, worst = rows[0].Score, rows[0].Score
	}

	byCategory := map[string]*categoryStat{}
	categories := map[uuid.UUID]struct{}{}

	for _, row := range rows {
		totalScore += row.Score
		if row.Score > best {
			best = row.Score
		}
		if row.Score < worst {
			worst = row.Score
		}

		stat, ok := byCategory[row.CategoryName]
		if !ok {
			stat = &categoryStat{}
			byCategory[row.CategoryName] = stat
		}
		stat.Total += row.Score
		stat.Count++

		categories[row.CategoryID] = struct{}{}
	}

	average := 0
	if totalPlayed > 0 {
		average = int(math.Round(float64(totalScore) / float64(totalPlayed)))
	}
	scoresByCategory := make(map[string]categoryStat, len(byCategory))
	for name, stat := range byCategory {
		stat.Average = int(math.Round(float64(stat.Total) / float64(stat.Count)))
		scoresByCategory[name] = *stat
	}

	recent := make([]recentQuizEntry, 0, 5)
	for i, row := range rows {
		if i == 5 {
			break
		}
		recent = append(recent, recentQuizEntry{
			QuizID:       row.QuizID,
			QuizTitle:    row.QuizTitle,
			CategoryName: row.CategoryName,
			Score:        row.Score,
			PlayedAt:     row.PlayedAt,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_quizzes_played": totalPlayed,
		"average_score":        average,
		"best_score":           best,
		"worst_score":          worst,
		"categories_played":    len(categories),
		"scores_by_category":   scoresByCategory,
		"recent_quizzes":       recent,
	})
}

type historyEntry struct {
	ID              uuid.UUID `json:"id"`
	QuizID          uuid.UUID `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
	QuizDescription string    `json:"quiz_description"`
	CategoryName    string    `json:"category_name"`
	Difficulty      string    `json:"difficulty"`
	Score           int       `json:"score"`
	PlayedAt        time.Time `json:"played_at"`
}

// =============================
// 🕑 Player History (semua permainan, terbaru dulu)
// =============================
func (ctrl *StatsController) GetPlayerHistory(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	if userID == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	rows, err := ctrl.loadPlayerScores(c, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}

	history := make([]historyEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, historyEntry{
			ID:              row.ScoreID,
			QuizID:          row.QuizID,
			QuizTitle:       row.QuizTitle,
			QuizDescription: row.QuizDescription,
			CategoryName:    row.CategoryName,
			Difficulty:      row.Difficulty,
			Score:           row.Score,
			PlayedAt:        row.PlayedAt,
		})
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"history":      history,
		"total_played": len(history),
	})
}
