package models

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	RoleStudent     UserRole = "student"
	RoleTeacher     UserRole = "teacher"
	RoleParent      UserRole = "parent"
	RoleAdmin       UserRole = "admin"
	RoleSchoolAdmin UserRole = "school_admin"
	RoleSchool      UserRole = "school"
	RoleReader      UserRole = "reader"
)

type SubscriptionType string

const (
	SubscriptionFree SubscriptionType = "free"
	SubscriptionFull SubscriptionType = "full"
)

// FreeQuizLimit je maksimalan broj kvizova za besplatne naloge.
const FreeQuizLimit = 3

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Username string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email    string    `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string    `gorm:"type:text;not null" json:"-"`
	FullName string    `gorm:"size:150" json:"full_name"`
	Role     UserRole  `gorm:"type:varchar(20);not null;default:'student'" json:"role"`

	Points     int    `gorm:"default:0" json:"points"`
	AgeGroup   string `gorm:"size:10" json:"age_group"`
	SchoolName string `gorm:"size:200" json:"school_name"`
	ClassName  string `gorm:"size:50" json:"class_name"`

	// Vlasnički odnosi: nastavnik smije upravljati samo učenicima koje je
	// sam kreirao, roditelj samo povezanom djecom.
	ParentID           *uuid.UUID `gorm:"type:uuid" json:"parent_id"`
	CreatedByTeacherID *uuid.UUID `gorm:"type:uuid" json:"created_by_teacher_id"`

	// Institucionalni nalozi čekaju odobrenje admina prije prijave.
	Approved        bool   `gorm:"default:true" json:"approved"`
	InstitutionType string `gorm:"size:50" json:"institution_type,omitempty"`
	InstitutionRole string `gorm:"size:50" json:"institution_role,omitempty"`

	SubscriptionType      SubscriptionType `gorm:"type:varchar(20);not null;default:'free'" json:"subscription_type"`
	SubscriptionExpiresAt *time.Time       `json:"subscription_expires_at"`
	MaxStudentAccounts    int              `gorm:"default:0" json:"max_student_accounts"`
	MaxTeacherAccounts    int              `gorm:"default:0" json:"max_teacher_accounts"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// EffectiveSubscriptionType vraća tip pretplate nakon provjere isteka.
// Istekla plaćena pretplata se tretira kao "free", ali se zapis u bazi
// ne mijenja. I status endpoint i provjera prije kviza zovu ovu funkciju.
func EffectiveSubscriptionType(u *User, now time.Time) SubscriptionType {
	if u.SubscriptionType == SubscriptionFree {
		return SubscriptionFree
	}
	if u.SubscriptionExpiresAt != nil && u.SubscriptionExpiresAt.Before(now) {
		return SubscriptionFree
	}
	return u.SubscriptionType
}

// IsInstitutional kaže da li je registracija došla sa institucionalnim
// markerima (škola/vrtić), što nalog stavlja u red za odobrenje.
func (u *User) IsInstitutional() bool {
	return u.InstitutionType != "" && u.InstitutionRole != ""
}
