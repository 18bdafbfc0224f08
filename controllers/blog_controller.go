package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type BlogPostInput struct {
	Title      string `json:"title" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CoverImage string `json:"cover_image"`
	Published  bool   `json:"published"`
}

func GetBlogPosts(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	query := db.Model(&models.BlogPost{})
	// Javna lista prikazuje samo objavljene članke; admin vidi sve.
	if c.GetString("role") != string(models.RoleAdmin) {
		query = query.Where("published = ?", true)
	}

	var posts []models.BlogPost
	if err := query.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju članaka"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func GetBlogPostBySlug(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var post models.BlogPost
	if err := db.Where("slug = ?", c.Param("slug")).First(&post).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Članak nije pronađen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

func CreateBlogPost(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	authorID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input BlogPostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := models.BlogPost{
		Title:      input.Title,
		Slug:       slug.Make(input.Title),
		Content:    input.Content,
		CoverImage: input.CoverImage,
		AuthorID:   authorID,
		Published:  input.Published,
	}
	if err := db.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju članka"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Članak je kreiran", "post": post})
}

func UpdateBlogPost(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID članka"})
		return
	}

	var post models.BlogPost
	if err := db.First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Članak nije pronađen"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "id")
	delete(updates, "author_id")
	if title, ok := updates["title"].(string); ok && title != "" {
		updates["slug"] = slug.Make(title)
	}

	if err := db.Model(&post).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni članka"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Članak je izmijenjen", "post": post})
}

func DeleteBlogPost(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID članka"})
		return
	}

	if err := db.Delete(&models.BlogPost{}, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju članka"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Članak je obrisan"})
}

// ====== KONTAKT PORUKE ======

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func CreateContactMessage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
	}
	if err := db.Create(&msg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri slanju poruke"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Poruka je poslana"})
}

func GetContactMessages(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var messages []models.ContactMessage
	if err := db.Order("created_at DESC").Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju poruka"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func DeleteContactMessage(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	msgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID poruke"})
		return
	}

	if err := db.Delete(&models.ContactMessage{}, "id = ?", msgID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju poruke"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Poruka je obrisana"})
}
