package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK        bool   `json:"ok"`
	Service   string `json:"service"`
	DB        string `json:"db"`
	LatencyMS int64  `json:"db_latency_ms"`
}

// Health pings the invoicing store and reports how long the round trip took.
// An unreachable store answers 503 so load balancers stop routing here.
//
// @Summary  Liveness and database check
// @Tags     health
// @Produce  json
// @Success  200 {object} HealthResponse
// @Failure  503 {object} HealthResponse
// @Router   /health [get]
func Health(service string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		resp := HealthResponse{Service: service, DB: "connected"}
		start := time.Now()
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		resp.LatencyMS = time.Since(start).Milliseconds()
		if err != nil {
			resp.DB = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		resp.OK = true
		c.JSON(http.StatusOK, resp)
	}
}
