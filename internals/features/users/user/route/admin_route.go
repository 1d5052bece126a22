package route

import (
	"triviaku_backend/internals/constants"
	userController "triviaku_backend/internals/features/users/user/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CRUD user + daftar role, khusus admin
func UserAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola user"),
			constants.AdminOnly,
		),
	)

	userCtrl := userController.NewUserAdminController(db)
	users := admin.Group("/users")
	users.Get("/", userCtrl.GetAllUsers)
	users.Get("/:id", userCtrl.GetUserByID)
	users.Post("/", userCtrl.CreateUser)
	users.Patch("/:id", userCtrl.UpdateUserByID)
	users.Delete("/:id", userCtrl.DeleteUserByID)

	admin.Get("/roles", userCtrl.GetRoles)
}
