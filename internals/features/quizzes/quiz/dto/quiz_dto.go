package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"triviaku_backend/internals/features/quizzes/quiz/model"
)

/* ===============================
   Response DTOs (admin)
=================================*/

type QuizOptionDTO struct {
	OptionID        uuid.UUID `json:"option_id"`
	OptionText      string    `json:"option_text"`
	OptionIsCorrect bool      `json:"option_is_correct"`
	QuestionID      uuid.UUID `json:"question_id"`
}

type QuizQuestionDTO struct {
	QuestionID   uuid.UUID       `json:"question_id"`
	QuestionText string          `json:"question_text"`
	QuestionType string          `json:"question_type"`
	QuizID       uuid.UUID       `json:"quiz_id"`
	CreatedAt    time.Time       `json:"created_at"`
	Options      []QuizOptionDTO `json:"options,omitempty"`
}

type QuizDTO struct {
	QuizID          uuid.UUID         `json:"quiz_id"`
	QuizTitle       string            `json:"quiz_title"`
	QuizDescription string            `json:"quiz_description"`
	QuizDifficulty  string            `json:"quiz_difficulty"`
	QuizCategoryID  uuid.UUID         `json:"quiz_category_id"`
	QuizUserID      uuid.UUID         `json:"quiz_user_id"`
	QuizCreatedAt   time.Time         `json:"quiz_created_at"`
	Questions       []QuizQuestionDTO `json:"questions,omitempty"`
}

func ToQuizOptionDTO(o model.QuizOptionModel) QuizOptionDTO {
	return QuizOptionDTO{
		OptionID:        o.OptionID,
		OptionText:      o.OptionText,
		OptionIsCorrect: o.OptionIsCorrect,
		QuestionID:      o.OptionQuestionID,
	}
}

func ToQuizQuestionDTO(q model.QuizQuestionModel, withOptions bool) QuizQuestionDTO {
	out := QuizQuestionDTO{
		QuestionID:   q.QuestionID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		QuizID:       q.QuestionQuizID,
		CreatedAt:    q.QuestionCreatedAt,
	}
	if withOptions {
		out.Options = make([]QuizOptionDTO, 0, len(q.Options))
		for _, o := range q.Options {
			out.Options = append(out.Options, ToQuizOptionDTO(o))
		}
	}
	return out
}

func ToQuizDTO(q model.QuizModel, withQuestions, withOptions bool) QuizDTO {
	out := QuizDTO{
		QuizID:          q.QuizID,
		QuizTitle:       q.QuizTitle,
		QuizDescription: q.QuizDescription,
		QuizDifficulty:  q.QuizDifficulty,
		QuizCategoryID:  q.QuizCategoryID,
		QuizUserID:      q.QuizUserID,
		QuizCreatedAt:   q.QuizCreatedAt,
	}
	if withQuestions {
		out.Questions = make([]QuizQuestionDTO, 0, len(q.Questions))
		for _, question := range q.Questions {
			out.Questions = append(out.Questions, ToQuizQuestionDTO(question, withOptions))
		}
	}
	return out
}

/* ===============================
   Response DTOs (player)
   option tanpa flag is_correct supaya jawaban tidak bocor.
=================================*/

type PlayerOptionDTO struct {
	OptionID   uuid.UUID `json:"option_id"`
	OptionText string    `json:"option_text"`
}

type PlayerQuestionDTO struct {
	QuestionID   uuid.UUID         `json:"question_id"`
	QuestionText string            `json:"question_text"`
	QuestionType string            `json:"question_type"`
	Options      []PlayerOptionDTO `json:"options"`
}

type PlayerQuizDetailDTO struct {
	QuizID          uuid.UUID           `json:"quiz_id"`
	QuizTitle       string              `json:"quiz_title"`
	QuizDescription string              `json:"quiz_description"`
	QuizDifficulty  string              `json:"quiz_difficulty"`
	CategoryID      uuid.UUID           `json:"category_id"`
	CategoryName    string              `json:"category_name"`
	Questions       []PlayerQuestionDTO `json:"questions"`
}

type PlayerQuizListItemDTO struct {
	QuizID          uuid.UUID `json:"quiz_id"`
	QuizTitle       string    `json:"quiz_title"`
	QuizDescription string    `json:"quiz_description"`
	QuizDifficulty  string    `json:"quiz_difficulty"`
	QuizCategoryID  uuid.UUID `json:"quiz_category_id"`
	QuizCreatedAt   time.Time `json:"quiz_created_at"`
	PlayCount       int64     `json:"play_count"`
}

func ToPlayerQuestionDTO(q model.QuizQuestionModel) PlayerQuestionDTO {
	opts := make([]PlayerOptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, PlayerOptionDTO{
			OptionID:   o.OptionID,
			OptionText: o.OptionText,
		})
	}
	return PlayerQuestionDTO{
		QuestionID:   q.QuestionID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		Options:      opts,
	}
}

/* ===============================
   Request DTOs
=================================*/

type CreateQuizRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=255"`
	Description string `json:"description" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required,oneof=easy medium hard"`
	CategoryID  string `json:"category_id" validate:"required,uuid"`
}

type UpdateQuizRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=3,max=255"`
	Description *string `json:"description" validate:"omitempty"`
	Difficulty  *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	CategoryID  *string `json:"category_id" validate:"omitempty,uuid"`
}

type QuestionInput struct {
	Question     string `json:"question" validate:"required,min=3"`
	QuestionType string `json:"question_type" validate:"required,oneof=multiple_choice true_false"`
}

type OptionInput struct {
	Text      string `json:"text" validate:"required"`
	IsCorrect bool   `json:"is_correct"`
}

type QuestionWithOptionsInput struct {
	Question     string        `json:"question" validate:"required,min=3"`
	QuestionType string        `json:"question_type" validate:"required,oneof=multiple_choice true_false"`
	Options      []OptionInput `json:"options" validate:"required,min=2,dive"`
}

type CreateQuizWithQuestionsRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=255"`
	Description string          `json:"description" validate:"required"`
	Difficulty  string          `json:"difficulty" validate:"required,oneof=easy medium hard"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Questions   []QuestionInput `json:"questions" validate:"required,min=1,dive"`
}

type CreateQuizWithQuestionsAndAnswersRequest struct {
	Title       string                     `json:"title" validate:"required,min=3,max=255"`
	Description string                     `json:"description" validate:"required"`
	Difficulty  string                     `json:"difficulty" validate:"required,oneof=easy medium hard"`
	CategoryID  string                     `json:"category_id" validate:"required,uuid"`
	Questions   []QuestionWithOptionsInput `json:"questions" validate:"required,min=1,dive"`
}

// ValidateTrueFalseShape memastikan soal true_false punya tepat 2 opsi
// dengan tepat 1 jawaban benar. Dicek saat create bersarang saja.
func ValidateTrueFalseShape(questions []QuestionWithOptionsInput) error {
	for i, q := range questions {
		if q.QuestionType != model.QuestionTypeTrueFalse {
			continue
		}
		if len(q.Options) != 2 {
			return fmt.Errorf("questions[%d]: soal true_false harus punya tepat 2 opsi", i)
		}
		correct := 0
		for _, o := range q.Options {
			if o.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("questions[%d]: soal true_false harus punya tepat 1 opsi benar", i)
		}
	}
	return nil
}

/* ===============================
   Flat question & option requests
=================================*/

type CreateQuestionRequest struct {
	Question     string `json:"question" validate:"required,min=3"`
	QuestionType string `json:"question_type" validate:"required,oneof=multiple_choice true_false"`
	QuizID       string `json:"quiz_id" validate:"required,uuid"`
}

type UpdateQuestionRequest struct {
	Question     *string `json:"question" validate:"omitempty,min=3"`
	QuestionType *string `json:"question_type" validate:"omitempty,oneof=multiple_choice true_false"`
}

type CreateOptionRequest struct {
	Text       string `json:"text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
	QuestionID string `json:"question_id" validate:"required,uuid"`
}

type UpdateOptionRequest struct {
	Text      *string `json:"text" validate:"omitempty"`
	IsCorrect *bool   `json:"is_correct"`
}
