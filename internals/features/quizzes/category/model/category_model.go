package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizCategoryModel struct {
	QuizCategoryID        uuid.UUID `gorm:"column:quiz_category_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_category_id"`
	QuizCategoryName      string    `gorm:"column:quiz_category_name;type:varchar(255);not null" json:"quiz_category_name"`
	QuizCategoryCreatedAt time.Time `gorm:"column:quiz_category_created_at;autoCreateTime" json:"quiz_category_created_at"`
}

func (QuizCategoryModel) TableName() string {
	return "quiz_categories"
}
