package dto

import (
	"testing"

	"triviaku_backend/internals/features/quizzes/quiz/model"
)

func tfQuestion(options ...OptionInput) QuestionWithOptionsInput {
	return QuestionWithOptionsInput{
		Question:     "Langit berwarna biru.",
		QuestionType: model.QuestionTypeTrueFalse,
		Options:      options,
	}
}

func TestValidateTrueFalseShape(t *testing.T) {
	tests := []struct {
		name      string
		questions []QuestionWithOptionsInput
		wantErr   bool
	}{
		{
			name: "true_false valid",
			questions: []QuestionWithOptionsInput{
				tfQuestion(
					OptionInput{Text: "True", IsCorrect: true},
					OptionInput{Text: "False", IsCorrect: false},
				),
			},
			wantErr: false,
		},
		{
			name: "true_false dengan tiga opsi ditolak",
			questions: []QuestionWithOptionsInput{
				tfQuestion(
					OptionInput{Text: "True", IsCorrect: true},
					OptionInput{Text: "False", IsCorrect: false},
					OptionInput{Text: "Maybe", IsCorrect: false},
				),
			},
			wantErr: true,
		},
		{
			name: "true_false tanpa jawaban benar ditolak",
			questions: []QuestionWithOptionsInput{
				tfQuestion(
					OptionInput{Text: "True", IsCorrect: false},
					OptionInput{Text: "False", IsCorrect: false},
				),
			},
			wantErr: true,
		},
		{
			name: "true_false dua jawaban benar ditolak",
			questions: []QuestionWithOptionsInput{
				tfQuestion(
					OptionInput{Text: "True", IsCorrect: true},
					OptionInput{Text: "False", IsCorrect: true},
				),
			},
			wantErr: true,
		},
		{
			name: "multiple_choice tidak dicek bentuknya",
			questions: []QuestionWithOptionsInput{
				{
					Question:     "Pilih semua yang benar",
					QuestionType: model.QuestionTypeMultipleChoice,
					Options: []OptionInput{
						{Text: "A", IsCorrect: true},
						{Text: "B", IsCorrect: true},
						{Text: "C", IsCorrect: false},
					},
				},
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTrueFalseShape(tt.questions)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTrueFalseShape() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestToPlayerQuestionDTOHidesCorrectness(t *testing.T) {
	q := model.QuizQuestionModel{
		QuestionText: "2 + 2?",
		QuestionType: model.QuestionTypeMultipleChoice,
		Options: []model.QuizOptionModel{
			{OptionText: "4", OptionIsCorrect: true},
			{OptionText: "5", OptionIsCorrect: false},
		},
	}

	player := ToPlayerQuestionDTO(q)
	if len(player.Options) != 2 {
		t.Fatalf("len(Options) = %d, want 2", len(player.Options))
	}
	// PlayerOptionDTO memang tidak punya field is_correct, cukup pastikan
	// teks opsi ikut terbawa tanpa ketinggalan
	if player.Options[0].OptionText != "4" || player.Options[1].OptionText != "5" {
		t.Error("teks opsi tidak ikut terbawa")
	}
}
