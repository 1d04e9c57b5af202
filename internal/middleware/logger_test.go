package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func loggedRequest(t *testing.T, status int) observer.LoggedEntry {
	t.Helper()
	gin.SetMode(gin.TestMode)

	core, logs := observer.New(zap.DebugLevel)
	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/api/articles", func(c *gin.Context) {
		c.Status(status)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/articles?page=2", nil)
	r.ServeHTTP(w, req)

	entries := logs.All()
	require.Len(t, entries, 1)
	return entries[0]
}

func TestLoggerLevelsByStatus(t *testing.T) {
	assert.Equal(t, zap.InfoLevel, loggedRequest(t, http.StatusOK).Level)
	assert.Equal(t, zap.WarnLevel, loggedRequest(t, http.StatusNotFound).Level)
	assert.Equal(t, zap.ErrorLevel, loggedRequest(t, http.StatusInternalServerError).Level)
}

func TestLoggerFields(t *testing.T) {
	entry := loggedRequest(t, http.StatusOK)
	fields := entry.ContextMap()

	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/api/articles", fields["path"])
	assert.Equal(t, "page=2", fields["query"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
}
