package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardRoute "triviaku_backend/internals/features/dashboard/route"
	pushRoute "triviaku_backend/internals/features/notifications/push/route"
	categoryRoute "triviaku_backend/internals/features/quizzes/category/route"
	quizRoute "triviaku_backend/internals/features/quizzes/quiz/route"
	scoringRoute "triviaku_backend/internals/features/quizzes/scoring/route"
	authRoute "triviaku_backend/internals/features/users/auth/route"
	userRoute "triviaku_backend/internals/features/users/user/route"
)

// SetupRoutes memasang seluruh route di bawah /api/v1.
// Pembagian grup mengikuti peran: /auth publik, /admin khusus admin,
// /player untuk player (admin ikut boleh), /push campuran.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	api := app.Group("/api/v1")

	// 🔓 Auth (register, login, google, otp)
	authRoute.AuthRoutes(api, db)

	// 🛠️ Admin panel
	admin := api.Group("/admin")
	userRoute.UserAdminRoutes(admin, db)
	categoryRoute.QuizCategoryAdminRoutes(admin, db)
	quizRoute.QuizAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)

	// 🎮 Player surface
	player := api.Group("/player")
	categoryRoute.QuizCategoryPlayerRoutes(player, db)
	quizRoute.QuizPlayerRoutes(player, db)
	scoringRoute.ScoringPlayerRoutes(player, db)

	// 🔔 Web push
	pushRoute.PushRoutes(api, db)

	log.Println("✅ Semua route berhasil dipasang")
}
