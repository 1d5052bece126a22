package route

import (
	"triviaku_backend/internals/constants"
	scoringController "triviaku_backend/internals/features/quizzes/scoring/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Main quiz + statistik + riwayat, untuk player (admin juga boleh)
func ScoringPlayerRoutes(api fiber.Router, db *gorm.DB) {
	player := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorPlayer("bermain quiz"),
			constants.PlayerAndAbove,
		),
	)

	playCtrl := scoringController.NewPlayController(db)
	player.Post("/quizz/:quizId/play", playCtrl.PlayQuiz)

	statsCtrl := scoringController.NewStatsController(db)
	player.Get("/stats", statsCtrl.GetPlayerStats)
	player.Get("/history", statsCtrl.GetPlayerHistory)
}
