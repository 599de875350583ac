package server

import (
	"net/http"

	"gymflow/internal/api"
	"gymflow/internal/booking"
	"gymflow/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Router       /health [get]
func Health(bookings booking.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		classes := bookings.ListClasses(c.Request.Context(), nil)
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Classes: len(classes)})
	}
}

// @Summary      Notification queue length
// @Tags         system
// @Produce      json
// @Success      200 {object} map[string]int64
// @Router       /notifications/queue [get]
func NotificationQueue(notifier *notify.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"length": notifier.QueueLength(c.Request.Context())})
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
