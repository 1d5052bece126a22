package seeds

import (
	"errors"
	"log"

	"gorm.io/gorm"

	categoryModel "triviaku_backend/internals/features/quizzes/category/model"
	quizModel "triviaku_backend/internals/features/quizzes/quiz/model"
	userModel "triviaku_backend/internals/features/users/user/model"
)

type seedOption struct {
	Text      string
	IsCorrect bool
}

type seedQuestion struct {
	Text    string
	Type    string
	Options []seedOption
}

type seedQuiz struct {
	Title       string
	Description string
	Difficulty  string
	Category    string
	OwnerEmail  string
	Questions   []seedQuestion
}

// SeedQuizzes membuat quiz contoh lengkap dengan soal dan opsi.
// Upsert per judul, nested create sekaligus lewat asosiasi GORM.
func SeedQuizzes(db *gorm.DB) error {
	quizzes := []seedQuiz{
		{
			Title:       "Science Quiz",
			Description: "A quiz about science.",
			Difficulty:  quizModel.DifficultyEasy,
			Category:    "Science",
			OwnerEmail:  "fgolmos10@gmail.com",
			Questions: []seedQuestion{
				{
					Text: "What is the chemical symbol for water?",
					Type: quizModel.QuestionTypeMultipleChoice,
					Options: []seedOption{
						{"H2O", true}, {"O2", false}, {"CO2", false},
					},
				},
				{
					Text: "The earth is flat.",
					Type: quizModel.QuestionTypeTrueFalse,
					Options: []seedOption{
						{"True", false}, {"False", true},
					},
				},
			},
		},
		{
			Title:       "History Quiz",
			Description: "A quiz about history.",
			Difficulty:  quizModel.DifficultyMedium,
			Category:    "History",
			OwnerEmail:  "miguelvillalpando19@gmail.com",
			Questions: []seedQuestion{
				{
					Text: "Who was the first president of the United States?",
					Type: quizModel.QuestionTypeMultipleChoice,
					Options: []seedOption{
						{"George Washington", true},
						{"Abraham Lincoln", false},
						{"Thomas Jefferson", false},
					},
				},
			},
		},
		{
			Title:       "General Knowledge",
			Description: "Test your general knowledge.",
			Difficulty:  quizModel.DifficultyEasy,
			Category:    "Programming",
			OwnerEmail:  "fgolmos10@gmail.com",
			Questions: []seedQuestion{
				{
					Text: "What does HTML stand for?",
					Type: quizModel.QuestionTypeMultipleChoice,
					Options: []seedOption{
						{"Hyper Text Markup Language", true},
						{"High Tech Modern Language", false},
						{"Hyperlink and Text Markup Language", false},
					},
				},
				{
					Text: "Python is a compiled language.",
					Type: quizModel.QuestionTypeTrueFalse,
					Options: []seedOption{
						{"True", false}, {"False", true},
					},
				},
			},
		},
		{
			Title:       "Geography Challenge",
			Description: "How well do you know the world?",
			Difficulty:  quizModel.DifficultyHard,
			Category:    "Geography",
			OwnerEmail:  "miguelvillalpando19@gmail.com",
			Questions: []seedQuestion{
				{
					Text: "What is the capital of France?",
					Type: quizModel.QuestionTypeMultipleChoice,
					Options: []seedOption{
						{"Paris", true}, {"London", false}, {"Berlin", false},
					},
				},
				{
					Text: "The Amazon River is the longest river in the world.",
					Type: quizModel.QuestionTypeTrueFalse,
					Options: []seedOption{
						{"True", false}, {"False", true},
					},
				},
			},
		},
	}

	for _, sq := range quizzes {
		var existing quizModel.QuizModel
		err := db.First(&existing, "quiz_title = ?", sq.Title).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var category categoryModel.QuizCategoryModel
		if err := db.First(&category, "quiz_category_name = ?", sq.Category).Error; err != nil {
			return err
		}
		var owner userModel.UserModel
		if err := db.First(&owner, "email = ?", sq.OwnerEmail).Error; err != nil {
			return err
		}

		quiz := quizModel.QuizModel{
			QuizTitle:       sq.Title,
			QuizDescription: sq.Description,
			QuizDifficulty:  sq.Difficulty,
			QuizCategoryID:  category.QuizCategoryID,
			QuizUserID:      owner.ID,
		}
		for _, q := range sq.Questions {
			question := quizModel.QuizQuestionModel{
				QuestionText: q.Text,
				QuestionType: q.Type,
			}
			for _, o := range q.Options {
				question.Options = append(question.Options, quizModel.QuizOptionModel{
					OptionText:      o.Text,
					OptionIsCorrect: o.IsCorrect,
				})
			}
			quiz.Questions = append(quiz.Questions, question)
		}

		if err := db.Create(&quiz).Error; err != nil {
			return err
		}
		log.Printf("🌱 Quiz dibuat: %s (%d soal)", sq.Title, len(sq.Questions))
	}
	return nil
}
