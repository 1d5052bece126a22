package dto

import (
	"time"

	"triviaku_backend/internals/features/quizzes/category/model"
)

type QuizCategoryDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func ToQuizCategoryDTO(m model.QuizCategoryModel) QuizCategoryDTO {
	return QuizCategoryDTO{
		ID:        m.QuizCategoryID.String(),
		Name:      m.QuizCategoryName,
		CreatedAt: m.QuizCategoryCreatedAt,
	}
}

type CreateQuizCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type UpdateQuizCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}
