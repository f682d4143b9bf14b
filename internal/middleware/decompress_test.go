package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecompressRouter(handlerCalled *bool) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("Content-Encoding") == "gzip" {
			DecompressGzip(c)
		}
		c.Next()
	})
	router.POST("/", func(c *gin.Context) {
		*handlerCalled = true
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, string(body))
	})
	return router
}

func TestDecompressGzip_ValidBody(t *testing.T) {
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(`{"name": "Grace"}`))
	require.NoError(t, err)
	require.NoError(t, gz.Close())

	var called bool
	router := newDecompressRouter(&called)

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"name": "Grace"}`, w.Body.String())
}

func TestDecompressGzip_InvalidBody(t *testing.T) {
	var called bool
	router := newDecompressRouter(&called)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name": "Grace"}`))
	req.Header.Set("Content-Encoding", "gzip")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.False(t, called, "handler must not run for an undecodable body")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Request body could not be decompressed."}`, w.Body.String())
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
}
