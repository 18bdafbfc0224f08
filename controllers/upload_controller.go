package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"

	"github.com/mojalektira/backend/utils"
)

func uploadTo(c *gin.Context, folder string) (string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fajl je obavezan"})
		return "", false
	}

	url, err := utils.SaveUpload(fileHeader, folder, uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri snimanju fajla"})
		return "", false
	}
	return url, true
}

func UploadCover(c *gin.Context) {
	url, ok := uploadTo(c, "covers")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func UploadLogo(c *gin.Context) {
	url, ok := uploadTo(c, "logos")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// UploadBook snima PDF knjige i usput izvuče broj stranica, da se
// page_count ne mora unositi ručno.
func UploadBook(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fajl je obavezan"})
		return
	}

	pageCount := 0
	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		if f, err := fileHeader.Open(); err == nil {
			if reader, err := pdf.NewReader(f, fileHeader.Size); err == nil {
				pageCount = reader.NumPage()
			}
			f.Close()
		}
	}

	url, err := utils.SaveUpload(fileHeader, "books", uuid.New().String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Greška pri snimanju fajla"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "page_count": pageCount})
}
