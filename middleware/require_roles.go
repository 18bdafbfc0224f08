package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mojalektira/backend/models"
)

// Guardovi su čiste provjere nad podacima sesije, bez I/O. Vlasničke
// provjere (nastavnik nad svojim učenikom, roditelj nad svojim djetetom)
// ostaju u tijelu handlera jer zavise od konkretnog entiteta.

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func requireRoles(allowed ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("user_id") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Niste prijavljeni"})
			c.Abort()
			return
		}
		role := models.UserRole(c.GetString("role"))
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"error": "Nemate pravo pristupa ovom resursu"})
		c.Abort()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return requireRoles(models.RoleAdmin)
}

func RequireTeacher() gin.HandlerFunc {
	return requireRoles(models.RoleTeacher, models.RoleAdmin)
}

func RequireSchoolAdmin() gin.HandlerFunc {
	return requireRoles(models.RoleSchoolAdmin, models.RoleAdmin)
}
