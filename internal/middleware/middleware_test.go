package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_Generated(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_ClientValue(t *testing.T) {
	tests := []struct {
		name   string
		header string
		reused bool
	}{
		{"valid uuid is reused", "0b6f2c3e-8a34-4d8e-9a50-0f5c0e0c2d11", true},
		{"garbage is replaced", "not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())
			r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set(RequestIDHeader, tt.header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if tt.reused {
				assert.Equal(t, tt.header, w.Header().Get(RequestIDHeader))
			} else {
				assert.NotEqual(t, tt.header, w.Header().Get(RequestIDHeader))
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger))
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, float64(500), entry["status"])
	assert.Equal(t, w.Header().Get(RequestIDHeader), entry["request_id"])
}

func TestHTMLCharset(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		expected    string
	}{
		{"bare html", "text/html", HTMLContentType},
		{"other charset", "text/html; charset=latin1", HTMLContentType},
		{"already utf-8", HTMLContentType, HTMLContentType},
		{"json untouched", "application/json; charset=utf-8", "application/json; charset=utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(HTMLCharset())
			r.GET("/", func(c *gin.Context) {
				c.Data(http.StatusOK, tt.contentType, []byte("<p>ñ</p>"))
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, tt.expected, w.Header().Get("Content-Type"))
		})
	}
}
