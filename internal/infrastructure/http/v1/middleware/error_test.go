package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockyard/internal/core/apperror"
)

func serve(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/", handler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestErrorHandlerRendersAppError(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		_ = c.Error(apperror.NewNotFound("depot", 7))
		c.Abort()
	})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeNotFound, body.Code)
	assert.Equal(t, "depot not found", body.Message)
	assert.Equal(t, "depot", body.Details["entity"])
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		_ = c.Error(errors.New("pq: column does not exist"))
		c.Abort()
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, apperror.CodeInternal, body.Code)
	assert.NotContains(t, body.Message, "pq:", "internal detail must not leak")
}

func TestErrorHandlerDoesNotOverrideWrittenResponse(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
		_ = c.Error(apperror.NewInternal(errors.New("late failure")))
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"ok"}`, rec.Body.String())
}

func TestErrorHandlerPassesThroughCleanRequests(t *testing.T) {
	rec := serve(t, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "ok"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}
