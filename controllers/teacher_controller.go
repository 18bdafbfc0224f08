package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/utils"
)

// Nastavnik upravlja samo učenicima koje je sam kreirao: svaki handler
// ovdje pored role guard-a provjerava i created_by_teacher_id.

type CreateStudentInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FullName  string `json:"full_name"`
	AgeGroup  string `json:"age_group"`
	ClassName string `json:"class_name"`
}

func CreateStudent(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input CreateStudentInput
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

	var teacher models.User
	if err := db.First(&teacher, "id = ?", teacherID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	// Institucionalni limit broja učeničkih naloga.
	if teacher.MaxStudentAccounts > 0 {
		var count int64
		db.Model(&models.User{}).Where("created_by_teacher_id = ?", teacherID).Count(&count)
		if count >= int64(teacher.MaxStudentAccounts) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Dostignut je maksimalan broj učeničkih naloga"})
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri obradi lozinke"})
		return
	}

	student := models.User{
		Username:           input.Username,
		Email:              input.Email,
		Password:           string(hashed),
		FullName:           input.FullName,
		Role:               models.RoleStudent,
		AgeGroup:           input.AgeGroup,
		SchoolName:         teacher.SchoolName,
		ClassName:          input.ClassName,
		CreatedByTeacherID: &teacherID,
	}
	if err := db.Create(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju učenika"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Učenik je kreiran", "student": student})
}

func GetMyStudents(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	var students []models.User
	if err := db.Where("created_by_teacher_id = ?", teacherID).
		Order("class_name ASC, username ASC").Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju učenika"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students, "total": len(students)})
}

type ResetStudentPasswordInput struct {
	NewPassword string `json:"new_password" binding:"required"`
}

func ResetStudentPassword(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID := c.GetString("user_id")

	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID učenika"})
		return
	}

	var input ResetStudentPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(input.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.User
	if err := db.First(&student, "id = ?", studentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Učenik nije pronađen"})
		return
	}

	// Vlasnička provjera: tuđem učeniku se lozinka ne mijenja.
	if student.CreatedByTeacherID == nil || student.CreatedByTeacherID.String() != teacherID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ovaj učenik nije pod vašim nalogom"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri obradi lozinke"})
		return
	}

	if err := db.Model(&student).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni lozinke"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lozinka učenika je resetovana"})
}

type BonusPointsInput struct {
	StudentID uuid.UUID `json:"student_id" binding:"required"`
	Points    int       `json:"points" binding:"required,gt=0"`
	Reason    string    `json:"reason"`
}

// AwardBonusPoints dodaje bonus bodove učeniku; upis bonusa i uvećanje
// bodova idu kroz jednu transakciju.
func AwardBonusPoints(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	teacherID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var input BonusPointsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.User
	if err := db.First(&student, "id = ?", input.StudentID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Učenik nije pronađen"})
		return
	}
	if student.CreatedByTeacherID == nil || *student.CreatedByTeacherID != teacherID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Ovaj učenik nije pod vašim nalogom"})
		return
	}

	bonus := models.BonusPoints{
		StudentID: input.StudentID,
		TeacherID: teacherID,
		Points:    input.Points,
		Reason:    input.Reason,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&bonus).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", input.StudentID).
			Update("points", gorm.Expr("points + ?", input.Points)).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri dodjeli bodova"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Bodovi su dodijeljeni", "bonus": bonus})
}
