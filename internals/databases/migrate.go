package database

import (
	"log"

	pushModel "triviaku_backend/internals/features/notifications/push/model"
	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
	quizModel "triviaku_backend/internals/features/quizzes/quiz/model"
	scoringModel "triviaku_backend/internals/features/quizzes/scoring/model"
	authModel "triviaku_backend/internals/features/users/auth/model"
	userModel "triviaku_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel.
// Urutan mengikuti dependensi FK (parent dulu).
func Migrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&categoryModel.QuizCategoryModel{},
		&quizModel.QuizModel{},
		&quizModel.QuizQuestionModel{},
		&quizModel.QuizOptionModel{},
		&scoringModel.QuizScoreModel{},
		&authModel.OTPCodeModel{},
		&pushModel.PushSubscriptionModel{},
	)
	if err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}
	log.Println("✅ Migrasi tabel selesai.")
}
