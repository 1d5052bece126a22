package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Satu baris per permainan. Insert-only, riwayat tidak pernah ditimpa.
type QuizScoreModel struct {
	QuizScoreID        uuid.UUID      `gorm:"column:quiz_score_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_score_id"`
	QuizScoreUserID    uuid.UUID      `gorm:"column:quiz_score_user_id;type:uuid;not null;index" json:"quiz_score_user_id"`
	QuizScoreQuizID    uuid.UUID      `gorm:"column:quiz_score_quiz_id;type:uuid;not null;index" json:"quiz_score_quiz_id"`
	QuizScoreValue     int            `gorm:"column:quiz_score_value;not null" json:"quiz_score_value"`
	QuizScoreDetails   datatypes.JSON `gorm:"column:quiz_score_details;type:jsonb" json:"quiz_score_details,omitempty"`
	QuizScoreCreatedAt time.Time      `gorm:"column:quiz_score_created_at;autoCreateTime" json:"quiz_score_created_at"`
}

func (QuizScoreModel) TableName() string {
	return "quiz_scores"
}
