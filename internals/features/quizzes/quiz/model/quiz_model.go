package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

type QuizModel struct {
	QuizID          uuid.UUID `gorm:"column:quiz_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_id"`
	QuizTitle       string    `gorm:"column:quiz_title;type:varchar(255);not null" json:"quiz_title"`
	QuizDescription string    `gorm:"column:quiz_description;type:text;not null" json:"quiz_description"`
	QuizDifficulty  string    `gorm:"column:quiz_difficulty;type:varchar(10);not null" json:"quiz_difficulty"`
	QuizCategoryID  uuid.UUID `gorm:"column:quiz_category_id;type:uuid;not null;index" json:"quiz_category_id"`
	QuizUserID      uuid.UUID `gorm:"column:quiz_user_id;type:uuid;not null" json:"quiz_user_id"`
	QuizCreatedAt   time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"quiz_created_at"`

	Questions []QuizQuestionModel `gorm:"foreignKey:QuestionQuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
