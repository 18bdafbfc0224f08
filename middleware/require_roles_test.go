package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(r *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if header != nil {
		req.Header = header
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionStub puni kontekst kao da je SessionMiddleware našao sesiju.
func sessionStub(userID, role, token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
			c.Set("role", role)
			c.Set("session_token", token)
		}
		c.Next()
	}
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		wantStatus int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"logged in", "u-1", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", sessionStub(tt.userID, "student", "t-1"), RequireAuth(), okHandler)

			w := performRequest(r, http.MethodGet, "/x", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRoleGuards(t *testing.T) {
	tests := []struct {
		name       string
		guard      gin.HandlerFunc
		role       string
		wantStatus int
	}{
		{"admin passes admin guard", RequireAdmin(), "admin", http.StatusOK},
		{"student blocked by admin guard", RequireAdmin(), "student", http.StatusForbidden},
		{"teacher blocked by admin guard", RequireAdmin(), "teacher", http.StatusForbidden},
		{"teacher passes teacher guard", RequireTeacher(), "teacher", http.StatusOK},
		{"admin passes teacher guard", RequireTeacher(), "admin", http.StatusOK},
		{"parent blocked by teacher guard", RequireTeacher(), "parent", http.StatusForbidden},
		{"school admin passes school guard", RequireSchoolAdmin(), "school_admin", http.StatusOK},
		{"teacher blocked by school guard", RequireSchoolAdmin(), "teacher", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/x", sessionStub("u-1", tt.role, "t-1"), tt.guard, okHandler)

			w := performRequest(r, http.MethodGet, "/x", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRoleGuardRequiresLogin(t *testing.T) {
	r := gin.New()
	r.GET("/x", sessionStub("", "", ""), RequireAdmin(), okHandler)

	w := performRequest(r, http.MethodGet, "/x", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireCSRF(t *testing.T) {
	orig := verifyCSRF
	defer func() { verifyCSRF = orig }()
	verifyCSRF = func(token, sessionToken string) error {
		if token == "validan" {
			return nil
		}
		return errors.New("nevažeći token")
	}

	tests := []struct {
		name       string
		method     string
		session    string
		header     string
		wantStatus int
	}{
		{"GET skips the check", http.MethodGet, "t-1", "", http.StatusOK},
		{"POST without session", http.MethodPost, "", "validan", http.StatusUnauthorized},
		{"POST without header", http.MethodPost, "t-1", "", http.StatusForbidden},
		{"POST with bad token", http.MethodPost, "t-1", "los", http.StatusForbidden},
		{"POST with valid token", http.MethodPost, "t-1", "validan", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			userID := ""
			if tt.session != "" {
				userID = "u-1"
			}
			r.Handle(tt.method, "/x", sessionStub(userID, "admin", tt.session), RequireCSRF(), okHandler)

			header := http.Header{}
			if tt.header != "" {
				header.Set("X-CSRF-Token", tt.header)
			}
			w := performRequest(r, tt.method, "/x", header)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
