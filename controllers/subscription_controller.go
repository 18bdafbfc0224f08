package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type SubscriptionStatus struct {
	SubscriptionType models.SubscriptionType `json:"subscription_type"`
	IsFree           bool                    `json:"is_free"`
	QuizLimit        int                     `json:"quiz_limit"`
	QuizzesUsed      int64                   `json:"quizzes_used"`
	QuizzesRemaining *int64                  `json:"quizzes_remaining"`
	ExpiresAt        *time.Time              `json:"expires_at"`
}

// BuildSubscriptionStatus je čista projekcija: isti EffectiveSubscriptionType
// poziv kao i provjera prije predaje kviza, da se logika ne raziđe.
func BuildSubscriptionStatus(user *models.User, used int64, now time.Time) SubscriptionStatus {
	effective := models.EffectiveSubscriptionType(user, now)
	status := SubscriptionStatus{
		SubscriptionType: effective,
		IsFree:           effective == models.SubscriptionFree,
		QuizLimit:        models.FreeQuizLimit,
		QuizzesUsed:      used,
		ExpiresAt:        user.SubscriptionExpiresAt,
	}
	if status.IsFree {
		remaining := int64(models.FreeQuizLimit) - used
		if remaining < 0 {
			remaining = 0
		}
		status.QuizzesRemaining = &remaining
	}
	return status
}

func GetSubscriptionStatus(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var user models.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	var used int64
	if err := db.Model(&models.QuizResult{}).Where("user_id = ?", user.ID).Count(&used).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju statusa"})
		return
	}

	c.JSON(http.StatusOK, BuildSubscriptionStatus(&user, used, time.Now()))
}
