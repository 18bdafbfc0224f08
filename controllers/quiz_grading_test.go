package controllers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mojalektira/backend/models"
)

func question(id uuid.UUID, correct string, points int) models.Question {
	return models.Question{ID: id, CorrectAnswer: correct, Points: points}
}

func TestGradeAnswers(t *testing.T) {
	q1 := uuid.New()
	q2 := uuid.New()
	q3 := uuid.New()

	questions := []models.Question{
		question(q1, "a", 1),
		question(q2, "b", 1),
		question(q3, "c", 1),
	}

	tests := []struct {
		name        string
		answers     []AnswerInput
		wantCorrect int
		wantWrong   int
		wantScore   int
	}{
		{
			name: "all correct",
			answers: []AnswerInput{
				{QuestionID: q1, SelectedAnswer: "a"},
				{QuestionID: q2, SelectedAnswer: "b"},
				{QuestionID: q3, SelectedAnswer: "c"},
			},
			wantCorrect: 3, wantWrong: 0, wantScore: 3,
		},
		{
			name: "mixed",
			answers: []AnswerInput{
				{QuestionID: q1, SelectedAnswer: "a"},
				{QuestionID: q2, SelectedAnswer: "d"},
				{QuestionID: q3, SelectedAnswer: "c"},
			},
			wantCorrect: 2, wantWrong: 1, wantScore: 1,
		},
		{
			// Više pogrešnih nego tačnih: bodovi se režu na nulu.
			name: "score never negative",
			answers: []AnswerInput{
				{QuestionID: q1, SelectedAnswer: "b"},
				{QuestionID: q2, SelectedAnswer: "c"},
				{QuestionID: q3, SelectedAnswer: "c"},
			},
			wantCorrect: 1, wantWrong: 2, wantScore: 0,
		},
		{
			// Nepoznato pitanje se preskače, ne računa se ni kao pogrešno.
			name: "unknown question id ignored",
			answers: []AnswerInput{
				{QuestionID: uuid.New(), SelectedAnswer: "a"},
				{QuestionID: q1, SelectedAnswer: "a"},
			},
			wantCorrect: 1, wantWrong: 0, wantScore: 1,
		},
		{
			name:        "no answers",
			answers:     nil,
			wantCorrect: 0, wantWrong: 0, wantScore: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, wrong, score := GradeAnswers(questions, tt.answers)
			if correct != tt.wantCorrect || wrong != tt.wantWrong || score != tt.wantScore {
				t.Errorf("GradeAnswers = (%d, %d, %d), želim (%d, %d, %d)",
					correct, wrong, score, tt.wantCorrect, tt.wantWrong, tt.wantScore)
			}
		})
	}
}

// Javni prikaz kviza ne smije nositi tačne odgovore.
func TestPublicQuizViewHidesCorrectAnswers(t *testing.T) {
	quiz := models.Quiz{
		ID:    uuid.New(),
		Title: "Kviz: Mali princ",
		Questions: []models.Question{
			{ID: uuid.New(), QuestionText: "Sa koje planete dolazi mali princ?", OptionA: "B-612", CorrectAnswer: "a", Points: 1},
			{ID: uuid.New(), QuestionText: "Koga princ sreće prvo?", OptionA: "Pilota", CorrectAnswer: "b", Points: 1},
		},
	}

	view := PublicQuizView(quiz)

	if len(view.Questions) != 2 {
		t.Fatalf("questions = %d, želim 2", len(view.Questions))
	}
	if view.Questions[0].QuestionText != quiz.Questions[0].QuestionText {
		t.Errorf("tekst pitanja = %q, želim %q", view.Questions[0].QuestionText, quiz.Questions[0].QuestionText)
	}

	payload, err := json.Marshal(view)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(payload), "correct_answer") {
		t.Error("javni odgovor sadrži correct_answer polje")
	}
}

// Težina pitanja (points) ne ulazi u bodovanje, svako pitanje nosi 1.
func TestGradeAnswersIgnoresQuestionPoints(t *testing.T) {
	q1 := uuid.New()
	questions := []models.Question{question(q1, "a", 10)}
	answers := []AnswerInput{{QuestionID: q1, SelectedAnswer: "a"}}

	_, _, score := GradeAnswers(questions, answers)
	if score != 1 {
		t.Errorf("score = %d, želim 1", score)
	}
}
