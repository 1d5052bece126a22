package model

import (
	"time"

	"github.com/google/uuid"
)

type QuizOptionModel struct {
	OptionID         uuid.UUID `gorm:"column:option_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"option_id"`
	OptionText       string    `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionIsCorrect  bool      `gorm:"column:option_is_correct;not null;default:false" json:"option_is_correct"`
	OptionQuestionID uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`
	OptionCreatedAt  time.Time `gorm:"column:option_created_at;autoCreateTime" json:"option_created_at"`
}

func (QuizOptionModel) TableName() string {
	return "quiz_options"
}
