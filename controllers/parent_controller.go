package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type LinkChildInput struct {
	Username string `json:"username" binding:"required"`
}

// LinkChild povezuje roditelja sa učeničkim nalogom. Nalog mora biti
// učenik i ne smije već imati roditelja.
func LinkChild(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	parentID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var parent models.User
	if err := db.First(&parent, "id = ?", parentID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}
	if parent.Role != models.RoleParent {
		c.JSON(http.StatusForbidden, gin.H{"error": "Samo roditeljski nalog može povezati dijete"})
		return
	}

	var input LinkChildInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var child models.User
	if err := db.Where("username = ?", input.Username).First(&child).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Učenički nalog nije pronađen"})
		return
	}
	if child.Role != models.RoleStudent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nalog nije učenički"})
		return
	}
	if child.ParentID != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nalog je već povezan sa roditeljem"})
		return
	}

	if err := db.Model(&child).Update("parent_id", parentID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri povezivanju naloga"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Dijete je povezano", "child": child})
}

func GetMyChildren(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	parentID := c.GetString("user_id")

	var children []models.User
	if err := db.Where("parent_id = ?", parentID).Order("username ASC").Find(&children).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju djece"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"children": children, "total": len(children)})
}
