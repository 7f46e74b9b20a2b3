package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// HTMLContentType is the header value every HTML response carries.
const HTMLContentType = "text/html; charset=utf-8"

type charsetWriter struct {
	gin.ResponseWriter
}

func (w *charsetWriter) forceCharset() {
	h := w.Header()
	ct := h.Get("Content-Type")
	if strings.HasPrefix(strings.ToLower(ct), "text/html") && ct != HTMLContentType {
		h.Set("Content-Type", HTMLContentType)
	}
}

func (w *charsetWriter) WriteHeaderNow() {
	if !w.Written() {
		w.forceCharset()
	}
	w.ResponseWriter.WriteHeaderNow()
}

func (w *charsetWriter) Write(data []byte) (int, error) {
	if !w.Written() {
		w.forceCharset()
	}
	return w.ResponseWriter.Write(data)
}

func (w *charsetWriter) WriteString(s string) (int, error) {
	if !w.Written() {
		w.forceCharset()
	}
	return w.ResponseWriter.WriteString(s)
}

// HTMLCharset rewrites any text/html Content-Type to declare UTF-8 before
// the headers go out.
func HTMLCharset() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &charsetWriter{ResponseWriter: c.Writer}
		c.Next()
	}
}
