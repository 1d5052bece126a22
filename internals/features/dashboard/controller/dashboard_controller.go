package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
	quizModel "triviaku_backend/internals/features/quizzes/quiz/model"
	userModel "triviaku_backend/internals/features/users/user/model"
	helper "triviaku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// =============================
// 📊 Dashboard Stats (hitungan global)
// =============================
func (ctrl *DashboardController) GetDashboardStats(c *fiber.Ctx) error {
	var totalQuizzes, totalCategories, totalUsers, totalQuestions int64

	db := ctrl.DB.WithContext(c.UserContext())
	counts := []struct {
		model any
		dest  *int64
	}{
		{&quizModel.QuizModel{}, &totalQuizzes},
		{&categoryModel.QuizCategoryModel{}, &totalCategories},
		{&userModel.UserModel{}, &totalUsers},
		{&quizModel.QuizQuestionModel{}, &totalQuestions},
	}
	for _, cnt := range counts {
		if err := db.Model(cnt.model).Count(cnt.dest).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil statistik dashboard")
		}
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"total_quizzes":    totalQuizzes,
		"total_categories": totalCategories,
		"total_users":      totalUsers,
		"total_questions":  totalQuestions,
	})
}
