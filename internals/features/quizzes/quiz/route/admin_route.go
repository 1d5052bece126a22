package route

import (
	"triviaku_backend/internals/constants"
	quizController "triviaku_backend/internals/features/quizzes/quiz/controller"
	authMiddleware "triviaku_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CRUD quiz/soal/opsi, khusus admin
func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	admin := api.Group("/",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorAdmin("mengelola quiz"),
			constants.AdminOnly,
		),
	)

	quizCtrl := quizController.NewQuizAdminController(db)
	quizzes := admin.Group("/quizzes")
	quizzes.Get("/", quizCtrl.GetAllQuizzes)
	quizzes.Get("/with-questions", quizCtrl.GetAllQuizzesWithQuestions)
	quizzes.Get("/with-questions-and-answers", quizCtrl.GetAllQuizzesWithQuestionsAndAnswers)
	quizzes.Get("/category/:categoryId", quizCtrl.GetQuizzesByCategoryID)
	quizzes.Get("/:id", quizCtrl.GetQuizByID)
	quizzes.Post("/", quizCtrl.CreateQuiz)
	quizzes.Post("/with-questions", quizCtrl.CreateQuizWithQuestions)
	quizzes.Post("/with-questions-and-answers", quizCtrl.CreateQuizWithQuestionsAndAnswers)
	quizzes.Patch("/:id", quizCtrl.UpdateQuizByID)
	quizzes.Delete("/:id", quizCtrl.DeleteQuizByID)

	questionCtrl := quizController.NewQuestionAdminController(db)
	questions := admin.Group("/questions")
	questions.Get("/", questionCtrl.GetAllQuestions)
	questions.Get("/quiz/:quizId", questionCtrl.GetQuestionsByQuizID)
	questions.Get("/:id", questionCtrl.GetQuestionByID)
	questions.Post("/", questionCtrl.CreateQuestion)
	questions.Patch("/:id", questionCtrl.UpdateQuestionByID)
	questions.Delete("/:id", questionCtrl.DeleteQuestionByID)

	optionCtrl := quizController.NewOptionAdminController(db)
	options := admin.Group("/options")
	options.Get("/", optionCtrl.GetAllOptions)
	options.Get("/:id", optionCtrl.GetOptionByID)
	options.Post("/", optionCtrl.CreateOption)
	options.Patch("/:id", optionCtrl.UpdateOptionByID)
	options.Delete("/:id", optionCtrl.DeleteOptionByID)
}
