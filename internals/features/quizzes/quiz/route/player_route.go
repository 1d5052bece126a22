package route

import (
	"triviaku_backend/internals/constants"
	quizController "triviaku_backend/internals/features/quizzes/quiz/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Katalog quiz untuk player (read-only, tanpa kunci jawaban)
func QuizPlayerRoutes(api fiber.Router, db *gorm.DB) {
	player := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorPlayer("bermain quiz"),
			constants.PlayerAndAbove,
		),
	)

	quizCtrl := quizController.NewQuizPlayerController(db)
	quizzes := player.Group("/quizzes")
	quizzes.Get("/", quizCtrl.GetQuizzes)
	quizzes.Get("/:id", quizCtrl.GetQuizByID)
}
