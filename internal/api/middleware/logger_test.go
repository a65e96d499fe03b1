package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func TestLoggerSkipsPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(Logger("/health"))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/orders", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders?weeks=2", nil))
	assert.Contains(t, buf.String(), `"path":"/orders?weeks=2"`)
	assert.Contains(t, buf.String(), `"status":200`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(Logger())
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))
	assert.Contains(t, buf.String(), `"level":"warn"`)
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Recovered from panic")
}
