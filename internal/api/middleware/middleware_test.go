package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"production-plan/internal/api/models"
	"production-plan/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(logger.NewWithWriter("test", &buf)))
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	var out models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	assert.Equal(t, "INTERNAL_ERROR", out.Error.Code)
	assert.Equal(t, "kaboom", out.Error.Message)
	assert.Equal(t, "req-1", out.Error.Details["request_id"])
	assert.Contains(t, buf.String(), "req-1")
}

func TestRequestID_GeneratedWhenMissing(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = RequestID(c)
		c.Status(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rr.Header().Get(RequestIDHeader))
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS("https://grid.example"))
	called := false
	r.POST("/productionplan", func(c *gin.Context) { called = true })
	r.OPTIONS("/productionplan", func(c *gin.Context) { called = true })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/productionplan", nil)
	req.Header.Set("Origin", "https://grid.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://grid.example", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.False(t, called)
}

func TestCORS_ActualRequest(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogger_WritesRequestLine(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestIDMiddleware(), Logger(logger.NewWithWriter("http", &buf)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/health", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.NotEmpty(t, entry["request_id"])
}

func TestNotFound(t *testing.T) {
	r := gin.New()
	r.NoRoute(NotFound)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NOT_FOUND")
}
