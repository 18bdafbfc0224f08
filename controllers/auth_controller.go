package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/config"
	"github.com/mojalektira/backend/middleware"
	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/utils"
)

type AuthController struct {
	Store middleware.SessionStore
}

func NewAuthController(store middleware.SessionStore) *AuthController {
	return &AuthController{Store: store}
}

// ====== INPUT STRUCTS ======

type RegisterInput struct {
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	FullName        string `json:"full_name"`
	Role            string `json:"role"`
	AgeGroup        string `json:"age_group"`
	SchoolName      string `json:"school_name"`
	ClassName       string `json:"class_name"`
	InstitutionType string `json:"institution_type"`
	InstitutionRole string `json:"institution_role"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ====== HANDLERS ======

func (a *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(input.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Korisničko ime je već zauzeto"})
		return
	}
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email adresa je već u upotrebi"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri obradi lozinke"})
		return
	}

	role := models.RoleStudent
	switch models.UserRole(input.Role) {
	case models.RoleParent:
		role = models.RoleParent
	case models.RoleReader:
		role = models.RoleReader
	}

	newUser := models.User{
		Username:   input.Username,
		Email:      input.Email,
		Password:   string(hashed),
		FullName:   input.FullName,
		Role:       role,
		AgeGroup:   input.AgeGroup,
		SchoolName: input.SchoolName,
		ClassName:  input.ClassName,
	}

	// Institucionalna registracija: nalog postaje nastavnik koji čeka
	// odobrenje admina i ne dobija sesiju.
	institutional := input.InstitutionType != "" && input.InstitutionRole != ""
	if institutional {
		newUser.Role = models.RoleTeacher
		newUser.Approved = false
		newUser.InstitutionType = input.InstitutionType
		newUser.InstitutionRole = input.InstitutionRole
	}

	if err := config.DB.Create(&newUser).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju naloga"})
		return
	}

	if institutional {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Nalog je kreiran i čeka odobrenje administratora",
			"code":    "PENDING_APPROVAL",
		})
		return
	}

	session, err := a.Store.Create(newUser.ID, newUser.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju sesije"})
		return
	}
	middleware.SetSessionCookie(c, session)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Registracija uspješna",
		"user":    newUser,
	})
}

func (a *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Pogrešno korisničko ime ili lozinka"})
		return
	}

	// Neodobreni institucionalni nastavnici dobijaju izričitu poruku.
	if user.IsInstitutional() && !user.Approved {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Nalog čeka odobrenje administratora",
			"code":  "PENDING_APPROVAL",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Pogrešno korisničko ime ili lozinka"})
		return
	}

	session, err := a.Store.Create(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju sesije"})
		return
	}
	middleware.SetSessionCookie(c, session)

	c.JSON(http.StatusOK, gin.H{
		"message": "Prijava uspješna",
		"user":    user,
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	if tokenStr := c.GetString("session_token"); tokenStr != "" {
		if token, err := uuid.Parse(tokenStr); err == nil {
			_ = a.Store.Destroy(token)
		}
	}
	middleware.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Odjava uspješna"})
}

func (a *AuthController) Me(c *gin.Context) {
	userIDStr := c.GetString("user_id")
	if userIDStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// CSRFToken izdaje token vezan za tekuću sesiju (double-submit zaštita).
func (a *AuthController) CSRFToken(c *gin.Context) {
	sessionToken := c.GetString("session_token")
	token, err := utils.GenerateCSRFToken(sessionToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izdavanju tokena"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"csrf_token": token})
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (a *AuthController) ChangePassword(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)
	userIDStr := c.GetString("user_id")

	var input ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Korisnik nije pronađen"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stara lozinka nije tačna"})
		return
	}

	if err := utils.ValidatePassword(input.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri obradi lozinke"})
		return
	}

	if err := db.Model(&user).Update("password", string(hashed)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni lozinke"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lozinka je promijenjena"})
}
