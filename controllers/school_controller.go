package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/utils"
)

// Školski administrator kreira nastavničke naloge svoje škole. Nalozi
// kreirani ovim putem ne čekaju odobrenje, školski admin je već odobren.

type CreateTeacherInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
}

func CreateTeacher(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	adminID := c.GetString("user_id")

	var input CreateTeacherInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := db.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Korisničko ime je već zauzeto"})
		return
	}
	if err := db.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email adresa je već u upotrebi"})
		return
	}

	var admin models.User
	if err := db.First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	// Institucionalni limit broja nastavničkih naloga.
	if admin.MaxTeacherAccounts > 0 {
		var count int64
		db.Model(&models.User{}).
			Where("role = ? AND school_name = ?", models.RoleTeacher, admin.SchoolName).
			Count(&count)
		if count >= int64(admin.MaxTeacherAccounts) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Dostignut je maksimalan broj nastavničkih naloga"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri obradi lozinke"})
		return
	}

	teacher := models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   string(hashed),
		FullName:   input.FullName,
		Role:       models.RoleTeacher,
		SchoolName: admin.SchoolName,
		Approved:   true,
	}
	if err := db.Create(&teacher).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju nastavnika"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Nastavnik je kreiran", "teacher": teacher})
}

func GetMyTeachers(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	adminID := c.GetString("user_id")

	var admin models.User
	if err := db.First(&admin, "id = ?", adminID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	var teachers []models.User
	if err := db.Where("role = ? AND school_name = ?", models.RoleTeacher, admin.SchoolName).
		Order("username ASC").Find(&teachers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju nastavnika"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teachers": teachers, "total": len(teachers)})
}
