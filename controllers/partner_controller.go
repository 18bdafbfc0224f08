package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

type PartnerInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	WebsiteURL  string `json:"website_url"`
}

func GetPartners(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var partners []models.Partner
	if err := db.Order("name ASC").Find(&partners).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri učitavanju partnera"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partners": partners})
}

func CreatePartner(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	var input PartnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	partner := models.Partner{
		Name:        input.Name,
		Description: input.Description,
		LogoURL:     input.LogoURL,
		WebsiteURL:  input.WebsiteURL,
	}
	if err := db.Create(&partner).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri kreiranju partnera"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Partner je dodan", "partner": partner})
}

func UpdatePartner(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID partnera"})
		return
	}

	var partner models.Partner
	if err := db.First(&partner, "id = ?", partnerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Partner nije pronađen"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	delete(updates, "id")

	if err := db.Model(&partner).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri izmjeni partnera"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner je izmijenjen", "partner": partner})
}

func DeletePartner(c *gin.Context) {
	db := c.MustGet("db").(*gorm.DB)

	partnerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Neispravan ID partnera"})
		return
	}

	if err := db.Delete(&models.Partner{}, "id = ?", partnerID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri brisanju partnera"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Partner je obrisan"})
}
