package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestLogEntry is a single recorded HTTP request.
type RequestLogEntry struct {
	RequestID    string        `json:"request_id"`
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
}

// RequestLogService records served requests so tests and the monitoring
// endpoint can inspect recent traffic.
type RequestLogService struct {
	logger  *zap.Logger
	mu      sync.RWMutex
	entries []RequestLogEntry
}

// NewRequestLogService creates a RequestLogService. A nil logger falls back
// to a no-op logger.
func NewRequestLogService(logger *zap.Logger) *RequestLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestLogService{
		logger:  logger,
		entries: make([]RequestLogEntry, 0),
	}
}

// Record appends a request entry.
func (s *RequestLogService) Record(entry RequestLogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// Recent returns up to n entries, newest first.
func (s *RequestLogService) Recent(n int) []RequestLogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if n <= 0 || n > len(s.entries) {
		n = len(s.entries)
	}
	out := make([]RequestLogEntry, n)
	for i := 0; i < n; i++ {
		out[i] = s.entries[len(s.entries)-1-i]
	}
	return out
}

// LoggingMiddleware records and logs every request except the monitoring
// endpoints themselves.
func (s *RequestLogService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		c.Next()

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		entry := RequestLogEntry{
			RequestID:    requestID,
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		}
		s.Record(entry)

		s.logger.Info("request served",
			zap.String("request_id", requestID),
			zap.String("method", entry.Method),
			zap.String("path", entry.Path),
			zap.Int("status", entry.StatusCode),
			zap.Duration("response_time", entry.ResponseTime),
		)
	}
}
