// internal/interfaces/http/middleware/timeout.go
package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// timeoutWriter suppresses handler writes once the deadline has fired,
// so the late handler goroutine cannot race the 408 response.
type timeoutWriter struct {
	gin.ResponseWriter

	mu       sync.Mutex
	timedOut bool
	wrote    bool
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return
	}
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timedOut {
		return len(b), nil
	}
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// markTimedOut flips the writer into suppression mode and reports
// whether the handler had already written a response.
func (w *timeoutWriter) markTimedOut() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timedOut = true
	return w.wrote
}

// Timeout aborts requests that exceed the deadline with a 408. The
// handler keeps running in its goroutine, but its writes are discarded
// from the moment the deadline fires.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		tw := &timeoutWriter{ResponseWriter: c.Writer}
		c.Writer = tw
		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			if wrote := tw.markTimedOut(); !wrote {
				w := tw.ResponseWriter
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusRequestTimeout)
				_, _ = w.Write([]byte(`{"error":"request timeout"}`))
			}
		}
	}
}

// RequestSizeLimit rejects request bodies above maxBytes
func RequestSizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "request body too large",
			})
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
