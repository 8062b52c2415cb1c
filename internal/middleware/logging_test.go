package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/middleware"
)

func TestLogging(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	prev := logger.Default()
	logger.SetLogger(logger.New(&buf, "debug", false))
	t.Cleanup(func() { logger.SetLogger(prev) })

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging())
	router.GET("/api/cars/:id", func(c *gin.Context) {
		if c.Param("id") == "0" {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Car not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})

	tests := []struct {
		path      string
		wantLevel string
		wantMsg   string
		status    float64
	}{
		{"/api/cars/1", "INFO", "Request completed", 200},
		{"/api/cars/0", "WARN", "Request rejected", 404},
	}

	for _, tt := range tests {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, tt.path, nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		router.ServeHTTP(httptest.NewRecorder(), req)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 1)

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
		assert.Equal(t, tt.wantLevel, entry["level"])
		assert.Equal(t, tt.wantMsg, entry["msg"])
		assert.Equal(t, "req-42", entry["request_id"])
		assert.Equal(t, "GET", entry["method"])
		assert.Equal(t, tt.path, entry["path"])
		assert.Equal(t, tt.status, entry["status"])
		assert.Contains(t, entry, "latency")
		assert.Contains(t, entry, "client_ip")
	}
}
