package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mojalektira/backend/config"
)

func HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	if config.DB == nil {
		dbStatus = "down"
	} else if sqlDB, err := config.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "down"
	}

	status := http.StatusOK
	if dbStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, gin.H{
		"status":   dbStatus,
		"time":     time.Now().Format(time.RFC3339),
		"database": dbStatus,
	})
}
