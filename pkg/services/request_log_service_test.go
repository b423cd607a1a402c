package services

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogRecentNewestFirst(t *testing.T) {
	svc := NewRequestLogService(nil)

	for i := 0; i < 5; i++ {
		svc.Record(RequestLogEntry{
			RequestID: fmt.Sprintf("req-%d", i),
			Timestamp: time.Now(),
			Path:      "/health",
			Method:    "GET",
		})
	}

	recent := svc.Recent(3)
	require.Len(t, recent, 3)
	assert.Equal(t, "req-4", recent[0].RequestID)
	assert.Equal(t, "req-3", recent[1].RequestID)
	assert.Equal(t, "req-2", recent[2].RequestID)
}

func TestRequestLogRecentBounds(t *testing.T) {
	svc := NewRequestLogService(nil)

	assert.Empty(t, svc.Recent(10))

	svc.Record(RequestLogEntry{RequestID: "req-0"})
	svc.Record(RequestLogEntry{RequestID: "req-1"})

	assert.Len(t, svc.Recent(10), 2)
	assert.Len(t, svc.Recent(0), 2)
	assert.Len(t, svc.Recent(-1), 2)
}

func TestLoggingMiddlewareSkipsMonitoringRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := NewRequestLogService(nil)

	r := gin.New()
	r.Use(svc.LoggingMiddleware())
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	r.GET("/api/v1/monitoring/logs", ok)
	r.GET("/api/v1/monitoring/health", ok)
	r.GET("/health", ok)

	for _, path := range []string{"/api/v1/monitoring/logs", "/api/v1/monitoring/health", "/health"} {
		req, err := http.NewRequest("GET", path, nil)
		require.NoError(t, err)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	recent := svc.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, "/health", recent[0].Path)
}

func TestRequestLogConcurrentRecord(t *testing.T) {
	svc := NewRequestLogService(nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			svc.Record(RequestLogEntry{RequestID: fmt.Sprintf("req-%d", i)})
		}(i)
	}
	wg.Wait()

	assert.Len(t, svc.Recent(0), 20)
}
