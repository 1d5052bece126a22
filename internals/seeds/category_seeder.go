package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
)

// SeedCategories membuat kategori awal. Upsert per nama.
func SeedCategories(db *gorm.DB) error {
	names := []string{"Science", "History", "Programming", "Geography"}

	for _, name := range names {
		var existing categoryModel.QuizCategoryModel
		err := db.First(&existing, "quiz_category_name = ?", name).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := db.Create(&categoryModel.QuizCategoryModel{
			QuizCategoryName: name,
		}).Error; err != nil {
			return err
		}
		log.Printf("🌱 Kategori dibuat: %s", name)
	}
	return nil
}
