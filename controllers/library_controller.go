package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

// ====== PREPORUKE ======

type RecommendationInput struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
	Note   string    `json:"note"`
}

func CreateRecommendation(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input RecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book models.Book
	if err := db.First(&book, "id = ?", input.BookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Knjiga nije pronađena"})
		return
	}

	rec := models.BookRecommendation{
		BookID: input.BookID,
		UserID: userID,
		Note:   input.Note,
	}
	if err := db.Create(&rec).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju preporuke"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Preporuka je dodana", "recommendation": rec})
}

func GetRecommendations(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var recs []models.BookRecommendation
	query := db.Order("created_at DESC")
	if bookID := c.Query("bookId"); bookID != "" {
		query = query.Where("book_id = ?", bookID)
	}
	if err := query.Find(&recs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju preporuka"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func DeleteRecommendation(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	recID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID preporuke"})
		return
	}

	if err := db.Delete(&models.BookRecommendation{}, "id = ?", recID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju preporuke"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Preporuka je obrisana"})
}

// ====== POZAJMICE ======

type BorrowInput struct {
	BookID uuid.UUID `json:"book_id" binding:"required"`
}

func BorrowBook(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input BorrowInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var book models.Book
	if err := db.First(&book, "id = ?", input.BookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Knjiga nije pronađena"})
		return
	}

	var open models.BookBorrowing
	if err := db.Where("book_id = ? AND user_id = ? AND returned_at IS NULL", input.BookID, userID).
		First(&open).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Knjiga je već pozajmljena"})
		return
	}

	borrowing := models.BookBorrowing{BookID: input.BookID, UserID: userID}
	if err := db.Create(&borrowing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri pozajmljivanju knjige"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Knjiga je pozajmljena", "borrowing": borrowing})
}

func ReturnBook(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString("user_id")

	borrowingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID pozajmice"})
		return
	}

	var borrowing models.BookBorrowing
	if err := db.First(&borrowing, "id = ?", borrowingID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pozajmica nije pronađena"})
		return
	}
	if borrowing.UserID.String() != userID && c.GetString("role") != string(models.RoleAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Pozajmica nije pod vašim nalogom"})
		return
	}
	if borrowing.ReturnedAt != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Knjiga je već vraćena"})
		return
	}

	now := time.Now()
	if err := db.Model(&borrowing).Update("returned_at", &now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri vraćanju knjige"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Knjiga je vraćena", "borrowing": borrowing})
}

func GetMyBorrowings(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userID := c.GetString("user_id")

	var borrowings []models.BookBorrowing
	if err := db.Where("user_id = ?", userID).Order("borrowed_at DESC").Find(&borrowings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju pozajmica"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"borrowings": borrowings})
}
