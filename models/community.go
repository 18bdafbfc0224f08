package models

import (
	"time"

	"github.com/google/uuid"
)

type Partner struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	LogoURL     string    `gorm:"type:text" json:"logo_url"`
	WebsiteURL  string    `gorm:"type:text" json:"website_url"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Challenge struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	RewardPoints int        `gorm:"default:0" json:"reward_points"`
	StartsAt     *time.Time `json:"starts_at"`
	EndsAt       *time.Time `json:"ends_at"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// ClassChallenge je izazov koji nastavnik zadaje svom odjeljenju.
type ClassChallenge struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID   uuid.UUID  `gorm:"type:uuid;not null" json:"teacher_id"`
	Teacher     User       `gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	ClassName   string     `gorm:"size:50;not null" json:"class_name"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	EndsAt      *time.Time `json:"ends_at"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

type BonusPoints struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Student   User      `gorm:"foreignKey:StudentID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	TeacherID uuid.UUID `gorm:"type:uuid;not null" json:"teacher_id"`
	Teacher   User      `gorm:"foreignKey:TeacherID;references:ID;constraint:OnDelete:CASCADE;" json:"-"`
	Points    int       `gorm:"not null" json:"points"`
	Reason    string    `gorm:"size:255" json:"reason"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type BookRecommendation struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookID    uuid.UUID `gorm:"type:uuid;not null" json:"book_id"`
	Book      Book      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Note      string    `gorm:"type:text" json:"note"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type BookBorrowing struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	BookID     uuid.UUID  `gorm:"type:uuid;not null" json:"book_id"`
	Book       Book       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	User       User       `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	BorrowedAt time.Time  `gorm:"autoCreateTime" json:"borrowed_at"`
	ReturnedAt *time.Time `json:"returned_at"`
}
