package service

import (
	"testing"

	"github.com/google/uuid"
)

func pair(q, o uuid.UUID) AnswerKey {
	return AnswerKey{QuestionID: q, OptionID: o}
}

func TestEvaluateAnswers(t *testing.T) {
	q1, q2, q3, q4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	o1, o2, o3, o4 := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	wrong := uuid.New()

	correctPairs := map[AnswerKey]struct{}{
		pair(q1, o1): {},
		pair(q2, o2): {},
		pair(q3, o3): {},
		pair(q4, o4): {},
	}

	tests := []struct {
		name        string
		answers     []Answer
		wantCorrect int
		wantResults int
	}{
		{
			name: "tiga dari empat benar",
			answers: []Answer{
				{QuestionID: q1, OptionID: o1},
				{QuestionID: q2, OptionID: o2},
				{QuestionID: q3, OptionID: o3},
				{QuestionID: q4, OptionID: wrong},
			},
			wantCorrect: 3,
			wantResults: 4,
		},
		{
			name:        "tanpa jawaban",
			answers:     []Answer{},
			wantCorrect: 0,
			wantResults: 0,
		},
		{
			name: "jawaban ganda untuk soal sama, yang pertama menang",
			answers: []Answer{
				{QuestionID: q1, OptionID: wrong},
				{QuestionID: q1, OptionID: o1},
			},
			wantCorrect: 0,
			wantResults: 1,
		},
		{
			name: "opsi benar milik soal lain tidak dihitung",
			answers: []Answer{
				{QuestionID: q1, OptionID: o2},
			},
			wantCorrect: 0,
			wantResults: 1,
		},
		{
			name: "semua benar",
			answers: []Answer{
				{QuestionID: q1, OptionID: o1},
				{QuestionID: q2, OptionID: o2},
				{QuestionID: q3, OptionID: o3},
				{QuestionID: q4, OptionID: o4},
			},
			wantCorrect: 4,
			wantResults: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, results := EvaluateAnswers(4, correctPairs, tt.answers)
			if correct != tt.wantCorrect {
				t.Errorf("correct = %d, want %d", correct, tt.wantCorrect)
			}
			if len(results) != tt.wantResults {
				t.Errorf("len(results) = %d, want %d", len(results), tt.wantResults)
			}
		})
	}
}

func TestEvaluateAnswersResultFlags(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	o1, wrong := uuid.New(), uuid.New()

	correctPairs := map[AnswerKey]struct{}{
		pair(q1, o1): {},
	}
	_, results := EvaluateAnswers(2, correctPairs, []Answer{
		{QuestionID: q1, OptionID: o1},
		{QuestionID: q2, OptionID: wrong},
	})

	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if !results[0].IsCorrect {
		t.Error("jawaban pertama harusnya benar")
	}
	if results[1].IsCorrect {
		t.Error("jawaban kedua harusnya salah")
	}
	if results[0].QuestionID != q1 || results[0].SelectedOptionID != o1 {
		t.Error("detail jawaban pertama tidak cocok")
	}
}

func TestComputeScore(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{"3 dari 4", 3, 4, 75},
		{"semua benar", 4, 4, 100},
		{"semua salah", 0, 4, 0},
		{"1 dari 3 (pembulatan ke bawah)", 1, 3, 33},
		{"2 dari 3 (pembulatan ke atas)", 2, 3, 67},
		{"1 dari 8 (half-up)", 1, 8, 13},
		{"total nol", 0, 0, 0},
		{"1 dari 1", 1, 1, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(tt.correct, tt.total); got != tt.want {
				t.Errorf("ComputeScore(%d, %d) = %d, want %d", tt.correct, tt.total, got, tt.want)
			}
		})
	}
}

func TestComputeScoreBounds(t *testing.T) {
	for correct := 0; correct <= 10; correct++ {
		got := ComputeScore(correct, 10)
		if got < 0 || got > 100 {
			t.Errorf("ComputeScore(%d, 10) = %d, di luar 0..100", correct, got)
		}
	}
}
