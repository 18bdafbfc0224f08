package models

import (
	"time"

	"github.com/google/uuid"
)

type ReadingDifficulty string

const (
	DifficultyEasy   ReadingDifficulty = "lako"
	DifficultyMedium ReadingDifficulty = "srednje"
	DifficultyHard   ReadingDifficulty = "tesko"
)

type Book struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Author      string    `gorm:"size:255;not null" json:"author"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"`

	CoverImage        string            `gorm:"type:text" json:"cover_image"`
	AgeGroup          string            `gorm:"size:10;default:'M'" json:"age_group"`
	Genre             string            `gorm:"size:100;default:'lektira'" json:"genre"`
	ReadingDifficulty ReadingDifficulty `gorm:"type:varchar(20);default:'srednje'" json:"reading_difficulty"`
	PageCount         int               `json:"page_count"`
	PdfURL            string            `gorm:"type:text" json:"pdf_url"`
	PurchaseURL       string            `gorm:"type:text" json:"purchase_url"`

	WeeklyPick bool `gorm:"default:false" json:"weekly_pick"`
	TimesRead  int  `gorm:"default:0" json:"times_read"`

	// Bibliografski podaci
	Publisher       string `gorm:"size:200" json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	PublicationCity string `gorm:"size:100" json:"publication_city"`
	ISBN            string `gorm:"size:30" json:"isbn"`
	CobissID        string `gorm:"size:30" json:"cobiss_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Quizzes []Quiz `gorm:"constraint:OnDelete:CASCADE;" json:"quizzes,omitempty"`
}
