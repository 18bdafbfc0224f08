package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func serveXLSX(c *gin.Context, filename string, f *excelize.File) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri generisanju dokumenta"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func setRow(f *excelize.File, sheet string, rowIdx int, values []interface{}) {
	for colIdx, v := range values {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
		f.SetCellValue(sheet, cell, v)
	}
}

// ExportUsersXLSX izvozi sve korisnike u Excel tabelu (admin pregled).
func ExportUsersXLSX(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var users []models.User
	if err := db.Order("created_at ASC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju korisnika"})
		return
	}

	f := excelize.NewFile()
	sheet := "Korisnici"
	f.SetSheetName("Sheet1", sheet)
	setRow(f, sheet, 1, []interface{}{
		"Korisničko ime", "Email", "Ime i prezime", "Uloga", "Bodovi",
		"Škola", "Razred", "Pretplata",
	})
	for i, u := range users {
		setRow(f, sheet, i+2, []interface{}{
			u.Username, u.Email, u.FullName, string(u.Role), u.Points,
			u.SchoolName, u.ClassName, string(u.SubscriptionType),
		})
	}

	serveXLSX(c, "korisnici.xlsx", f)
}

// ExportResultsXLSX izvozi sve rezultate kvizova sa imenom korisnika i
// naslovom kviza.
func ExportResultsXLSX(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	type resultRow struct {
		Username       string
		QuizTitle      string
		Score          int
		CorrectAnswers int
		WrongAnswers   int
		TotalQuestions int
		CompletedAt    string
	}

	var rows []resultRow
	err := db.Raw(`
		SELECT u.username, q.title AS quiz_title, r.score,
		       r.correct_answers, r.wrong_answers, r.total_questions,
		       TO_CHAR(r.completed_at, 'YYYY-MM-DD HH24:MI') AS completed_at
		FROM quiz_results r
		JOIN users u ON u.id = r.user_id
		JOIN quizzes q ON q.id = r.quiz_id
		ORDER BY r.completed_at DESC
	`).Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju rezultata"})
		return
	}

	f := excelize.NewFile()
	sheet := "Rezultati"
	f.SetSheetName("Sheet1", sheet)
	setRow(f, sheet, 1, []interface{}{
		"Korisnik", "Kviz", "Bodovi", "Tačni", "Netačni", "Ukupno pitanja", "Završeno",
	})
	for i, r := range rows {
		setRow(f, sheet, i+2, []interface{}{
			r.Username, r.QuizTitle, r.Score, r.CorrectAnswers,
			r.WrongAnswers, r.TotalQuestions, r.CompletedAt,
		})
	}

	serveXLSX(c, "rezultati.xlsx", f)
}

// ExportRosterXLSX izvozi spisak učenika nastavnika u Excel formatu.
func ExportRosterXLSX(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	var students []models.User
	if err := db.Where("created_by_teacher_id = ?", teacherID).
		Order("class_name ASC, username ASC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju učenika"})
		return
	}

	f := excelize.NewFile()
	sheet := "Učenici"
	f.SetSheetName("Sheet1", sheet)
	setRow(f, sheet, 1, []interface{}{"Korisničko ime", "Ime i prezime", "Razred", "Uzrast", "Bodovi"})
	for i, s := range students {
		setRow(f, sheet, i+2, []interface{}{s.Username, s.FullName, s.ClassName, s.AgeGroup, s.Points})
	}

	serveXLSX(c, fmt.Sprintf("ucenici-%s.xlsx", teacherID), f)
}
