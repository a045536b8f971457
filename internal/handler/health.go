package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health reports API liveness and DB connectivity. The API itself answering
// already means "ok"; only the db field varies.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "ok"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "fail"
		}

		c.JSON(http.StatusOK, gin.H{
			"api": "ok",
			"db":  dbStatus,
		})
	}
}
