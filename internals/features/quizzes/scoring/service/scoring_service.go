package service

import (
	"context"
	"errors"
	"math"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	quizModel "triviaku_backend/internals/features/quizzes/quiz/model"
	"triviaku_backend/internals/features/quizzes/scoring/model"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found")
	ErrQuizHasNoQuestions = errors.New("quiz has no questions")
)

// Jawaban player: pasangan soal + opsi yang dipilih
type Answer struct {
	QuestionID uuid.UUID `json:"question_id" validate:"required"`
	OptionID   uuid.UUID `json:"option_id" validate:"required"`
}

// AnswerKey identitas pasangan (soal, opsi) untuk pencocokan verbatim
type AnswerKey struct {
	QuestionID uuid.UUID
	OptionID   uuid.UUID
}

type QuestionResult struct {
	QuestionID       uuid.UUID `json:"question_id"`
	SelectedOptionID uuid.UUID `json:"selected_option_id"`
	IsCorrect        bool      `json:"is_correct"`
}

type PlayResult struct {
	ScoreID          uuid.UUID        `json:"score_id"`
	TotalQuestions   int              `json:"total_questions"`
	CorrectAnswers   int              `json:"correct_answers"`
	IncorrectAnswers int              `json:"incorrect_answers"`
	Score            int              `json:"score"`
	Results          []QuestionResult `json:"results"`
}

// EvaluateAnswers menghitung skor murni tanpa DB.
// Jawaban ganda untuk soal yang sama dibuang, yang pertama menang.
// Sebuah jawaban benar hanya jika pasangan (soal, opsi) persis ada
// di himpunan kunci; opsi benar milik soal lain tidak dihitung.
func EvaluateAnswers(totalQuestions int, correctPairs map[AnswerKey]struct{}, answers []Answer) (correct int, results []QuestionResult) {
	seen := make(map[uuid.UUID]struct{}, len(answers))
	results = make([]QuestionResult, 0, len(answers))

	for _, a := range answers {
		if _, dup := seen[a.QuestionID]; dup {
			continue
		}
		seen[a.QuestionID] = struct{}{}

		_, ok := correctPairs[AnswerKey{QuestionID: a.QuestionID, OptionID: a.OptionID}]
		if ok {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionID:       a.QuestionID,
			SelectedOptionID: a.OptionID,
			IsCorrect:        ok,
		})
	}
	return correct, results
}

// ComputeScore: round half-up dari C/T*100, dijaga tetap 0..100.
func ComputeScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	score := int(math.Round(float64(correct) / float64(total) * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}

type ScoringService struct {
	DB *gorm.DB
}

func NewScoringService(db *gorm.DB) *ScoringService {
	return &ScoringService{DB: db}
}

// ScoreQuiz menilai jawaban player dan menyimpan baris skor.
// Quiz tanpa soal ditolak (ErrQuizHasNoQuestions), tidak ada baris skor tersimpan.
func (s *ScoringService) ScoreQuiz(ctx context.Context, quizID, userID uuid.UUID, answers []Answer) (*PlayResult, error) {
	var quizCount int64
	if err := s.DB.WithContext(ctx).
		Model(&quizModel.QuizModel{}).
		Where("quiz_id = ?", quizID).
		Count(&quizCount).Error; err != nil {
		return nil, err
	}
	if quizCount == 0 {
		return nil, ErrQuizNotFound
	}

	var totalQuestions int64
	if err := s.DB.WithContext(ctx).
		Model(&quizModel.QuizQuestionModel{}).
		Where("question_quiz_id = ?", quizID).
		Count(&totalQuestions).Error; err != nil {
		return nil, err
	}
	if totalQuestions == 0 {
		return nil, ErrQuizHasNoQuestions
	}

	var correctRows []struct {
		OptionID         uuid.UUID `gorm:"column:option_id"`
		OptionQuestionID uuid.UUID `gorm:"column:option_question_id"`
	}
	if err := s.DB.WithContext(ctx).
		Model(&quizModel.QuizOptionModel{}).
		Select("quiz_options.option_id, quiz_options.option_question_id").
		Joins("JOIN quiz_questions q ON q.question_id = quiz_options.option_question_id").
		Where("q.question_quiz_id = ? AND quiz_options.option_is_correct = ?", quizID, true).
		Find(&correctRows).Error; err != nil {
		return nil, err
	}

	correctPairs := make(map[AnswerKey]struct{}, len(correctRows))
	for _, row := range correctRows {
		correctPairs[AnswerKey{QuestionID: row.OptionQuestionID, OptionID: row.OptionID}] = struct{}{}
	}

	correct, results := EvaluateAnswers(int(totalQuestions), correctPairs, answers)
	score := ComputeScore(correct, int(totalQuestions))

	details, err := sonic.Marshal(results)
	if err != nil {
		return nil, err
	}

	row := model.QuizScoreModel{
		QuizScoreUserID:  userID,
		QuizScoreQuizID:  quizID,
		QuizScoreValue:   score,
		QuizScoreDetails: details,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	return &PlayResult{
		ScoreID:          row.QuizScoreID,
		TotalQuestions:   int(totalQuestions),
		CorrectAnswers:   correct,
		IncorrectAnswers: int(totalQuestions) - correct,
		Score:            score,
		Results:          results,
	}, nil
}
