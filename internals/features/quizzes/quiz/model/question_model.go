package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
)

type QuizQuestionModel struct {
	QuestionID        uuid.UUID `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionText      string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType      string    `gorm:"column:question_type;type:varchar(20);not null" json:"question_type"`
	QuestionQuizID    uuid.UUID `gorm:"column:question_quiz_id;type:uuid;not null;index" json:"question_quiz_id"`
	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`

	Options []QuizOptionModel `gorm:"foreignKey:OptionQuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

func (QuizQuestionModel) TableName() string {
	return "quiz_questions"
}
