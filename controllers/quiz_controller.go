package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/ws"
)

type QuizInput struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
	Title  string    `json:"title" binding:"required"`
}

type QuestionInput struct {
	QuizID        uuid.UUID `json:"quiz_id" binding:"required"`
	QuestionText  string    `json:"question_text" binding:"required"`
	OptionA       string    `json:"option_a" binding:"required"`
	OptionB       string    `json:"option_b" binding:"required"`
	OptionC       string    `json:"option_c" binding:"required"`
	OptionD       string    `json:"option_d" binding:"required"`
	CorrectAnswer string    `json:"correct_answer" binding:"required,oneof=a b c d"`
	Points        int       `json:"points"`
}

type AnswerInput struct {
	QuestionID     uuid.UUID `json:"question_id"`
	SelectedAnswer string    `json:"selected_answer"`
}

// Javni prikaz pitanja: bez tačnog odgovora, taj stoji samo u admin listi.
type QuestionView struct {
	ID           uuid.UUID `json:"id"`
	QuizID       uuid.UUID `json:"quiz_id"`
	QuestionText string    `json:"question_text"`
	OptionA      string    `json:"option_a"`
	OptionB      string    `json:"option_b"`
	OptionC      string    `json:"option_c"`
	OptionD      string    `json:"option_d"`
	Points       int       `json:"points"`
}

type QuizView struct {
	ID        uuid.UUID      `json:"id"`
	BookID    uuid.UUID      `json:"book_id"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
	Questions []QuestionView `json:"questions"`
}

func PublicQuizView(quiz models.Quiz) QuizView {
	view := QuizView{
		ID:        quiz.ID,
		BookID:    quiz.BookID,
		Title:     quiz.Title,
		CreatedAt: quiz.CreatedAt,
		Questions: make([]QuestionView, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		view.Questions = append(view.Questions, QuestionView{
			ID:           q.ID,
			QuizID:       q.QuizID,
			QuestionText: q.QuestionText,
			OptionA:      q.OptionA,
			OptionB:      q.OptionB,
			OptionC:      q.OptionC,
			OptionD:      q.OptionD,
			Points:       q.Points,
		})
	}
	return view
}

// ====== KVIZOVI ======

func GetQuizzes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var quizzes []models.Quiz
	if err := db.Preload("Questions").Order("created_at DESC").Find(&quizzes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju kvizova"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quizzes": quizzes, "total": len(quizzes)})
}

func GetQuizDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID kviza"})
		return
	}

	var quiz models.Quiz
	if err := db.Preload("Questions").First(&quiz, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kviz nije pronađen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"quiz": PublicQuizView(quiz)})
}

func CreateQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book models.Book
	if err := db.First(&book, "id = ?", input.BookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Knjiga nije pronađena"})
		return
	}

	quiz := models.Quiz{BookID: input.BookID, Title: input.Title}
	if err := db.Create(&quiz).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju kviza"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Kviz je kreiran", "quiz": quiz})
}

func DeleteQuiz(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	quizID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID kviza"})
		return
	}

	if err := db.Delete(&models.Quiz{}, "id = ?", quizID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju kviza"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kviz je obrisan"})
}

// ====== PITANJA ======

func CreateQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input QuestionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", input.QuizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kviz nije pronađen"})
		return
	}

	points := input.Points
	if points <= 0 {
		points = 1
	}

	question := models.Question{
		QuizID:        input.QuizID,
		QuestionText:  input.QuestionText,
		OptionA:       input.OptionA,
		OptionB:       input.OptionB,
		OptionC:       input.OptionC,
		OptionD:       input.OptionD,
		CorrectAnswer: input.CorrectAnswer,
		Points:        points,
	}
	if err := db.Create(&question).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju pitanja"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pitanje je dodano", "question": question})
}

func UpdateQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID pitanja"})
		return
	}

	var question models.Question
	if err := db.First(&question, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pitanje nije pronađeno"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "id")
	delete(updates, "quiz_id")

	if err := db.Model(&question).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni pitanja"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pitanje je izmijenjeno", "question": question})
}

func DeleteQuestion(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID pitanja"})
		return
	}

	if err := db.Delete(&models.Question{}, "id = ?", questionID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju pitanja"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pitanje je obrisano"})
}

// ====== PREDAJA KVIZA ======

// GradeAnswers boduje predate odgovore prema učitanim pitanjima. Odgovori
// koji referenciraju nepoznata pitanja se tiho preskaču - ne broje se ni
// tačno ni netačno. Rezultat je correct-wrong, nikad ispod nule. Težina
// pitanja (points) se namjerno ne koristi: promjena bi mijenjala sve
// historijske rezultate.
func GradeAnswers(questions []models.Question, answers []AnswerInput) (correct, wrong, score int) {
	byID := make(map[uuid.UUID]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, ans := range answers {
		q, ok := byID[ans.QuestionID]
		if !ok {
			continue
		}
		if ans.SelectedAnswer == q.CorrectAnswer {
			correct++
		} else {
			wrong++
		}
	}

	score = correct - wrong
	if score < 0 {
		score = 0
	}
	return correct, wrong, score
}

type SubmitQuizInput struct {
	QuizID  uuid.UUID     `json:"quiz_id"`
	Answers []AnswerInput `json:"answers"`
}

// SubmitQuizResult prima odgovore, boduje ih i upisuje rezultat. Sva tri
// upisa (rezultat, bodovi korisnika, brojač čitanja knjige) idu kroz
// jednu transakciju, a jedinstveni indeks na (user_id, quiz_id) je
// konačni čuvar pravila jednog pokušaja.
func SubmitQuizResult(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input SubmitQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravni podaci"})
		return
	}
	if input.QuizID == uuid.Nil || len(input.Answers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Kviz i odgovori su obavezni"})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	// Kvota za besplatne naloge; istekla pretplata se ovdje tretira kao
	// free, bez prepisivanja zapisa u bazi.
	if models.EffectiveSubscriptionType(&user, time.Now()) == models.SubscriptionFree {
		var completed int64
		if err := db.Model(&models.QuizResult{}).Where("user_id = ?", userID).Count(&completed).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri provjeri kvote"})
			return
		}
		if completed >= models.FreeQuizLimit {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Iskoristili ste besplatne kvizove. Za nastavak je potrebna pretplata.",
				"code":  "SUBSCRIPTION_REQUIRED",
			})
			return
		}
	}

	var existing models.QuizResult
	if err := db.Where("user_id = ? AND quiz_id = ?", userID, input.QuizID).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Već ste riješili ovaj kviz",
			"code":  "ALREADY_COMPLETED",
		})
		return
	}

	var quiz models.Quiz
	if err := db.First(&quiz, "id = ?", input.QuizID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kviz nije pronađen"})
		return
	}

	var questions []models.Question
	if err := db.Where("quiz_id = ?", input.QuizID).Find(&questions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju pitanja"})
		return
	}
	if len(questions) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Kviz nema pitanja"})
		return
	}

	correct, wrong, score := GradeAnswers(questions, input.Answers)

	result := models.QuizResult{
		UserID:         userID,
		QuizID:         input.QuizID,
		Score:          score,
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&result).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", userID).
			Update("points", gorm.Expr("points + ?", score)).Error; err != nil {
			return err
		}
		return tx.Model(&models.Book{}).Where("id = ?", quiz.BookID).
			Update("times_read", gorm.Expr("times_read + 1")).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Već ste riješili ovaj kviz",
				"code":  "ALREADY_COMPLETED",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri upisu rezultata"})
		return
	}

	ws.BroadcastLeaderboardChanged(user.Username, score)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Kviz je uspješno predat",
		"result":  result,
	})
}

// Rezultati prijavljenog korisnika.
func GetMyQuizResults(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var results []models.QuizResult
	if err := db.Where("user_id = ?", userIDStr).Order("completed_at DESC").Find(&results).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju rezultata"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
}
