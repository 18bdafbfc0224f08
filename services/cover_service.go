package services

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
)

const coverURLFormat = "https://covers.openlibrary.org/b/isbn/%s-L.jpg"

var httpClient = &http.Client{Timeout: 10 * time.Second}

// FetchMissingCovers je jednokratna startup rutina: za knjige bez
// naslovnice, a sa ISBN-om, provjeri Open Library i upiši URL ako
// naslovnica postoji. Radi sekvencijalno i grešku po knjizi samo loguje.
func FetchMissingCovers(db *gorm.DB) {
	var books []models.Book
	err := db.Where("(cover_image = '' OR cover_image = ?) AND isbn <> ''", "/images/cover-placeholder.png").
		Find(&books).Error
	if err != nil {
		log.Println("Ne mogu učitati knjige bez naslovnice:", err)
		return
	}

	updated := 0
	for _, book := range books {
		url := fmt.Sprintf(coverURLFormat, book.ISBN)

		resp, err := httpClient.Head(url)
		if err != nil {
			log.Printf("Naslovnica za %q: %v", book.Title, err)
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			continue
		}

		if err := db.Model(&models.Book{}).Where("id = ?", book.ID).
			Update("cover_image", url).Error; err != nil {
			log.Printf("Upis naslovnice za %q: %v", book.Title, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("Dopunjeno %d naslovnica sa Open Library", updated)
	}
}
