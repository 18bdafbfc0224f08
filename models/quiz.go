package models

import (
	"time"

	"github.com/google/uuid"
)

type Quiz struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookID uuid.UUID `gorm:"type:uuid;not null" json:"book_id"`
	Book   Book      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Title  string    `gorm:"size:255;not null" json:"title"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE;" json:"questions,omitempty"`
}

type Question struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null" json:"quiz_id"`
	Quiz   Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	QuestionText  string `gorm:"type:text;not null" json:"question_text"`
	OptionA       string `gorm:"type:text;not null" json:"option_a"`
	OptionB       string `gorm:"type:text;not null" json:"option_b"`
	OptionC       string `gorm:"type:text;not null" json:"option_c"`
	OptionD       string `gorm:"type:text;not null" json:"option_d"`
	CorrectAnswer string `gorm:"size:1;not null" json:"correct_answer"` // a | b | c | d
	Points        int    `gorm:"default:1" json:"points"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// QuizResult je nepromjenjiv nakon kreiranja. Jedinstveni indeks na
// (user_id, quiz_id) je kanonski čuvar pravila "jedan pokušaj po kvizu" -
// provjera u handleru je samo brža poruka, indeks hvata utrku.
type QuizResult struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_results_user_quiz" json:"user_id"`
	User   User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_quiz_results_user_quiz" json:"quiz_id"`
	Quiz   Quiz      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	CorrectAnswers int       `gorm:"not null" json:"correct_answers"`
	WrongAnswers   int       `gorm:"not null" json:"wrong_answers"`
	CompletedAt    time.Time `gorm:"autoCreateTime" json:"completed_at"`
}
