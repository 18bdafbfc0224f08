package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mojalektira/backend/models"
	"github.com/mojalektira/backend/utils"
)

const SessionCookieName = "ml_session"

const sessionTTL = 7 * 24 * time.Hour

// SessionStore je eksplicitni interfejs nad stanjem sesija umjesto
// ambijentalnog stanja framework-a, da bi se handleri mogli testirati.
type SessionStore interface {
	Get(token uuid.UUID) (*models.Session, error)
	Create(userID uuid.UUID, role models.UserRole) (*models.Session, error)
	Destroy(token uuid.UUID) error
}

type GormSessionStore struct {
	DB *gorm.DB
}

func NewGormSessionStore(db *gorm.DB) *GormSessionStore {
	return &GormSessionStore{DB: db}
}

func (s *GormSessionStore) Get(token uuid.UUID) (*models.Session, error) {
	var session models.Session
	if err := s.DB.First(&session, "token = ?", token).Error; err != nil {
		return nil, err
	}
	if session.ExpiresAt.Before(time.Now()) {
		s.DB.Delete(&models.Session{}, "token = ?", token)
		return nil, gorm.ErrRecordNotFound
	}
	return &session, nil
}

func (s *GormSessionStore) Create(userID uuid.UUID, role models.UserRole) (*models.Session, error) {
	session := models.Session{
		Token:     uuid.New(),
		UserID:    userID,
		Role:      role,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.DB.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *GormSessionStore) Destroy(token uuid.UUID) error {
	return s.DB.Delete(&models.Session{}, "token = ?", token).Error
}

// SessionMiddleware čita neprozirni token iz HTTP-only kolačića i puni
// kontekst sa user_id, role i session_token. Bez validne sesije zahtjev
// samo prolazi dalje - guardovi odlučuju da li je prijava obavezna.
func SessionMiddleware(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil {
			c.Next()
			return
		}
		token, err := uuid.Parse(cookie)
		if err != nil {
			c.Next()
			return
		}
		session, err := store.Get(token)
		if err != nil {
			c.Next()
			return
		}
		c.Set("user_id", session.UserID.String())
		c.Set("role", string(session.Role))
		c.Set("session_token", session.Token.String())
		c.Next()
	}
}

// SetSessionCookie postavlja kolačić sesije na odgovoru.
func SetSessionCookie(c *gin.Context, session *models.Session) {
	c.SetCookie(SessionCookieName, session.Token.String(), int(sessionTTL.Seconds()), "/", "", false, true)
}

// ClearSessionCookie poništava kolačić sesije.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}

// RequireCSRF provjerava X-CSRF-Token zaglavlje na mutacijama.
func RequireCSRF() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}
		sessionToken := c.GetString("session_token")
		if sessionToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
			c.Abort()
			return
		}
		header := c.GetHeader("X-CSRF-Token")
		if header == "" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Nedostaje CSRF token"})
			c.Abort()
			return
		}
		if err := verifyCSRF(header, sessionToken); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Nevažeći CSRF token"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// zamjenjivo u testovima
var verifyCSRF = utils.VerifyCSRFToken
