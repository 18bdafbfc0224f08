package controllers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/utils"
)

const placeholderCover = "/images/cover-placeholder.png"

var bookCSVHeader = []string{
	"title", "author", "description", "ageGroup", "genre",
	"readingDifficulty", "pageCount", "coverImage", "weeklyPick",
	"publisher", "publicationYear", "isbn",
}

var quizCSVHeader = []string{
	"bookTitle", "quizTitle", "questionText",
	"optionA", "optionB", "optionC", "optionD", "correctAnswer", "points",
}

func fieldMap(header []string, fields []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, h := range header {
		m[strings.TrimSpace(h)] = fields[i]
	}
	return m
}

// BookFromRow mapira red uvoza na knjigu, sa podrazumijevanim
// vrijednostima za opciona polja. Naslov i autor su obavezni.
func BookFromRow(row map[string]string) (models.Book, error) {
	if row["title"] == "" {
		return models.Book{}, fmt.Errorf("nedostaje naslov")
	}
	if row["author"] == "" {
		return models.Book{}, fmt.Errorf("nedostaje autor")
	}

	book := models.Book{
		Title:       row["title"],
		Author:      row["author"],
		Description: row["description"],
		AgeGroup:    row["ageGroup"],
		Genre:       row["genre"],
		CoverImage:  row["coverImage"],
		Publisher:   row["publisher"],
		ISBN:        row["isbn"],
	}
	if book.AgeGroup == "" {
		book.AgeGroup = "M"
	}
	if book.Genre == "" {
		book.Genre = "lektira"
	}
	if book.CoverImage == "" {
		book.CoverImage = placeholderCover
	}

	difficulty := models.ReadingDifficulty(row["readingDifficulty"])
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	book.ReadingDifficulty = difficulty

	if v := row["pageCount"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			book.PageCount = n
		}
	}
	if v := row["publicationYear"]; v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			book.PublicationYear = n
		}
	}

	switch strings.ToLower(row["weeklyPick"]) {
	case "true", "1", "da":
		book.WeeklyPick = true
	}

	return book, nil
}

// NormalizeCorrectAnswer: vrijednosti izvan a-d se tiho svode na "a",
// uvoz zbog toga nikad ne puca.
func NormalizeCorrectAnswer(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "a", "b", "c", "d":
		return strings.ToLower(strings.TrimSpace(v))
	}
	return "a"
}

func readUploadedCSV(c *gin.Context) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV fajl je obavezan"})
		return "", false
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ne mogu otvoriti fajl"})
		return "", false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ne mogu pročitati fajl"})
		return "", false
	}
	return string(data), true
}

// ImportBooks: redovi sa pogrešnim brojem polja su već tiho odbačeni u
// parseru; ovdje se skupljaju samo semantičke greške po broju reda.
func ImportBooks(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	text, ok := readUploadedCSV(c)
	if !ok {
		return
	}

	header, rows := utils.ParseDelimited(text)
	if header == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV fajl nema zaglavlje"})
		return
	}

	imported := 0
	var titles []string
	var errorList []string

	for _, row := range rows {
		book, err := BookFromRow(fieldMap(header, row.Fields))
		if err != nil {
			errorList = append(errorList, fmt.Sprintf("red %d: %s", row.Line, err.Error()))
			continue
		}
		if err := db.Create(&book).Error; err != nil {
			errorList = append(errorList, fmt.Sprintf("red %d: greška pri upisu", row.Line))
			continue
		}
		imported++
		titles = append(titles, book.Title)
	}

	c.JSON(http.StatusOK, gin.H{
		"imported": imported,
		"errors":   errorList,
		"titles":   titles,
	})
}

// ImportQuizzes grupiše redove po (naslov knjige, naslov kviza) jer jedan
// CSV može opisivati više pitanja istog kviza. Red čiji naslov knjige ne
// postoji je greška samo za taj red.
func ImportQuizzes(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	text, ok := readUploadedCSV(c)
	if !ok {
		return
	}

	header, rows := utils.ParseDelimited(text)
	if header == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV fajl nema zaglavlje"})
		return
	}

	var books []models.Book
	if err := db.Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju knjiga"})
		return
	}
	booksByTitle := make(map[string]models.Book, len(books))
	for _, b := range books {
		booksByTitle[b.Title] = b
	}

	quizzesCreated := 0
	questionsCreated := 0
	var errorList []string
	quizByKey := make(map[string]models.Quiz)

	for _, row := range rows {
		m := fieldMap(header, row.Fields)

		book, ok := booksByTitle[m["bookTitle"]]
		if !ok {
			errorList = append(errorList, fmt.Sprintf("red %d: knjiga %q ne postoji", row.Line, m["bookTitle"]))
			continue
		}
		if m["questionText"] == "" {
			errorList = append(errorList, fmt.Sprintf("red %d: nedostaje tekst pitanja", row.Line))
			continue
		}

		key := m["bookTitle"] + "\x00" + m["quizTitle"]
		quiz, ok := quizByKey[key]
		if !ok {
			quiz = models.Quiz{BookID: book.ID, Title: m["quizTitle"]}
			if quiz.Title == "" {
				quiz.Title = "Kviz: " + book.Title
			}
			if err := db.Create(&quiz).Error; err != nil {
				errorList = append(errorList, fmt.Sprintf("red %d: greška pri kreiranju kviza", row.Line))
				continue
			}
			quizByKey[key] = quiz
			quizzesCreated++
		}

		points := 1
		if v := m["points"]; v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				points = n
			}
		}

		question := models.Question{
			QuizID:        quiz.ID,
			QuestionText:  m["questionText"],
			OptionA:       m["optionA"],
			OptionB:       m["optionB"],
			OptionC:       m["optionC"],
			OptionD:       m["optionD"],
			CorrectAnswer: NormalizeCorrectAnswer(m["correctAnswer"]),
			Points:        points,
		}
		if err := db.Create(&question).Error; err != nil {
			errorList = append(errorList, fmt.Sprintf("red %d: greška pri kreiranju pitanja", row.Line))
			continue
		}
		questionsCreated++
	}

	c.JSON(http.StatusOK, gin.H{
		"quizzes_created":   quizzesCreated,
		"questions_created": questionsCreated,
		"errors":            errorList,
	})
}

// ====== ŠABLONI ======

func serveCSV(c *gin.Context, filename, content string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(content))
}

func BooksTemplate(c *gin.Context) {
	sample := [][]string{{
		"Mali princ", "Antoine de Saint-Exupéry", "Priča o malom princu",
		"M", "lektira", "srednje", "96", "", "da", "Školska knjiga", "1943", "",
	}}
	serveCSV(c, "knjige-sablon.csv", utils.BuildDelimited(bookCSVHeader, sample))
}

func QuizzesTemplate(c *gin.Context) {
	sample := [][]string{{
		"Mali princ", "Kviz: Mali princ", "Sa koje planete dolazi mali princ?",
		"B-612", "Zemlja", "Mars", "Mjesec", "a", "1",
	}}
	serveCSV(c, "kvizovi-sablon.csv", utils.BuildDelimited(quizCSVHeader, sample))
}

// StudentRosterCSV izvozi spisak učenika prijavljenog nastavnika.
func StudentRosterCSV(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	var students []models.User
	if err := db.Where("created_by_teacher_id = ?", teacherID).
		Order("class_name ASC, username ASC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju učenika"})
		return
	}

	header := []string{"username", "fullName", "className", "ageGroup", "points"}
	rows := make([][]string, 0, len(students))
	for _, s := range students {
		rows = append(rows, []string{
			s.Username, s.FullName, s.ClassName, s.AgeGroup, strconv.Itoa(s.Points),
		})
	}
	serveCSV(c, "ucenici.csv", utils.BuildDelimited(header, rows))
}
