package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type ChallengeInput struct {
	Title        string     `json:"title" binding:"required"`
	Description  string     `json:"description"`
	RewardPoints int        `json:"reward_points"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
}

func GetChallenges(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var challenges []models.Challenge
	if err := db.Order("created_at DESC").Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju izazova"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func CreateChallenge(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input ChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge := models.Challenge{
		Title:        input.Title,
		Description:  input.Description,
		RewardPoints: input.RewardPoints,
		StartsAt:     input.StartsAt,
		EndsAt:       input.EndsAt,
	}
	if err := db.Create(&challenge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju izazova"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Izazov je kreiran", "challenge": challenge})
}

func DeleteChallenge(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID izazova"})
		return
	}

	if err := db.Delete(&models.Challenge{}, "id = ?", challengeID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju izazova"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Izazov je obrisan"})
}

// ====== RAZREDNI IZAZOVI ======

type ClassChallengeInput struct {
	ClassName   string     `json:"class_name" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	EndsAt      *time.Time `json:"ends_at"`
}

func CreateClassChallenge(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	teacherID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input ClassChallengeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge := models.ClassChallenge{
		TeacherID:   teacherID,
		ClassName:   input.ClassName,
		Title:       input.Title,
		Description: input.Description,
		EndsAt:      input.EndsAt,
	}
	if err := db.Create(&challenge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju razrednog izazova"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Razredni izazov je kreiran", "challenge": challenge})
}

func GetClassChallenges(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	var challenges []models.ClassChallenge
	if err := db.Where("teacher_id = ?", teacherID).
		Order("created_at DESC").Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju razrednih izazova"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenges": challenges})
}

func DeleteClassChallenge(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	challengeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID izazova"})
		return
	}

	var challenge models.ClassChallenge
	if err := db.First(&challenge, "id = ?", challengeID).Error; err == nil {
		if challenge.TeacherID.String() != teacherID && c.GetString("role") != string(models.RoleAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Ovaj izazov nije pod vašim nalogom"})
			return
		}
	}

	if err := db.Delete(&models.ClassChallenge{}, "id = ?", challengeID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju izazova"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Razredni izazov je obrisan"})
}
