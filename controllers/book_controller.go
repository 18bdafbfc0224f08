package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type BookInput struct {
	Title       string `json:"title" binding:"required"`
	Author      string `json:"author" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`

	CoverImage        string `json:"cover_image"`
	AgeGroup          string `json:"age_group"`
	Genre             string `json:"genre"`
	ReadingDifficulty string `json:"reading_difficulty"`
	PageCount         int    `json:"page_count"`
	PdfURL            string `json:"pdf_url"`
	PurchaseURL       string `json:"purchase_url"`
	WeeklyPick        bool   `json:"weekly_pick"`

	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	PublicationCity string `json:"publication_city"`
	ISBN            string `json:"isbn"`
	CobissID        string `json:"cobiss_id"`
}

func GetBooks(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.Book{})
	if ageGroup := c.Query("ageGroup"); ageGroup != "" {
		query = query.Where("age_group = ?", ageGroup)
	}
	if genre := c.Query("genre"); genre != "" {
		query = query.Where("genre = ?", genre)
	}
	if c.Query("weeklyPick") == "true" {
		query = query.Where("weekly_pick = ?", true)
	}

	var books []models.Book
	if err := query.Order("title ASC").Find(&books).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju knjiga"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "total": len(books)})
}

func GetBookDetail(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID knjige"})
		return
	}

	var book models.Book
	if err := db.Preload("Quizzes").First(&book, "id = ?", bookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Knjiga nije pronađena"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": book})
}

func CreateBook(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book := models.Book{
		Title:           input.Title,
		Author:          input.Author,
		Description:     input.Description,
		Content:         input.Content,
		CoverImage:      input.CoverImage,
		AgeGroup:        input.AgeGroup,
		Genre:           input.Genre,
		PageCount:       input.PageCount,
		PdfURL:          input.PdfURL,
		PurchaseURL:     input.PurchaseURL,
		WeeklyPick:      input.WeeklyPick,
		Publisher:       input.Publisher,
		PublicationYear: input.PublicationYear,
		PublicationCity: input.PublicationCity,
		ISBN:            input.ISBN,
		CobissID:        input.CobissID,
	}
	if input.ReadingDifficulty != "" {
		book.ReadingDifficulty = models.ReadingDifficulty(input.ReadingDifficulty)
	}

	if err := db.Create(&book).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju knjige"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Knjiga je dodana", "book": book})
}

func UpdateBook(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID knjige"})
		return
	}

	var book models.Book
	if err := db.First(&book, "id = ?", bookID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Knjiga nije pronađena"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "id")
	delete(updates, "times_read")

	if err := db.Model(&book).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni knjige"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Knjiga je izmijenjena", "book": book})
}

// Brisanje je idempotentno: brisanje nepostojeće knjige je i dalje uspjeh.
func DeleteBook(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	bookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID knjige"})
		return
	}

	if err := db.Delete(&models.Book{}, "id = ?", bookID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju knjige"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Knjiga je obrisana"})
}
