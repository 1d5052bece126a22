package route

import (
	"triviaku_backend/internals/constants"
	dashboardController "triviaku_backend/internals/features/dashboard/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Statistik ringkas untuk panel admin
func DashboardAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("dashboard"),
			constants.AdminOnly,
		),
	)

	dashboardCtrl := dashboardController.NewDashboardController(db)
	admin.Get("/dashboard", dashboardCtrl.GetDashboardStats)
}
