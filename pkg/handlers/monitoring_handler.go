package handlers

import (
	"net/http"

	"vyapar-testkit/pkg/services"

	"github.com/gin-gonic/gin"
)

// MonitoringHandler exposes the recorded request log.
type MonitoringHandler struct {
	Service *services.RequestLogService
}

// NewMonitoringHandler creates a MonitoringHandler.
func NewMonitoringHandler(service *services.RequestLogService) *MonitoringHandler {
	return &MonitoringHandler{Service: service}
}

// GetLogs returns recent request log entries, newest first. The limit query
// parameter caps the number of entries (default 50).
func (h *MonitoringHandler) GetLogs(c *gin.Context) {
	limit := queryInt(c, "limit", 50, 1, 1000)
	entries := h.Service.Recent(limit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
		"count":   len(entries),
	})
}
