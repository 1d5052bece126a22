package route

import (
	"triviaku_backend/internals/constants"
	categoryController "triviaku_backend/internals/features/quizzes/category/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CUD kategori, khusus admin
func QuizCategoryAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola kategori"),
			constants.AdminOnly,
		),
	)

	categoryCtrl := categoryController.NewQuizCategoryController(db)
	categories := admin.Group("/categories")
	categories.Get("/", categoryCtrl.GetAllCategories)
	categories.Get("/:id", categoryCtrl.GetCategoryByID)
	categories.Post("/", categoryCtrl.CreateCategory)
	categories.Put("/:id", categoryCtrl.UpdateCategoryByID)
	categories.Delete("/:id", categoryCtrl.DeleteCategoryByID)
}

// Read-only kategori untuk player
func QuizCategoryPlayerRoutes(api fiber.Router, db *gorm.DB) {
	player := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			"❌ Hanya pengguna terautentikasi yang boleh mengakses kategori.",
			constants.PlayerAndAbove,
		),
	)

	categoryCtrl := categoryController.NewQuizCategoryController(db)
	categories := player.Group("/categories")
	categories.Get("/", categoryCtrl.GetAllCategories)
	categories.Get("/:id", categoryCtrl.GetCategoryByID)
}
