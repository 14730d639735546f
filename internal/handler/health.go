package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Health returns a JSON health check response.
// Checks DB connectivity (and redis when configured); never exposes internals.
func Health(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "connected"
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(ctx) != nil {
			dbStatus = "error"
		}

		status := http.StatusOK
		if dbStatus != "connected" {
			status = http.StatusServiceUnavailable
		}

		body := gin.H{"ok": status == http.StatusOK, "db": dbStatus}

		if rdb != nil {
			redisStatus := "connected"
			if rdb.Ping(ctx).Err() != nil {
				redisStatus = "error"
			}
			body["redis"] = redisStatus
		}

		c.JSON(status, body)
	}
}
