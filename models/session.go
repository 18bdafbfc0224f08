package models

import (
	"time"

	"github.com/google/uuid"
)

// Session se čuva na serverskoj strani; klijent dobija samo neprozirni
// token u HTTP-only kolačiću.
type Session struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey" json:"token"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Role      UserRole  `gorm:"type:varchar(20);not null" json:"role"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
