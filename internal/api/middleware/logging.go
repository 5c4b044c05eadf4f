package middleware

import (
	"net/http"
	"time"

	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/viniciusmog/daily-diet-api/internal/logger"
)

// RequestLogger logs method, URI, status, response size and duration for
// every request through the global zap logger. chi's response-writer wrapper
// keeps optional interfaces like http.Flusher intact.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		logger.Log.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", ww.Status(),
			"size", ww.BytesWritten(),
			"took", time.Since(start),
		)
	})
}
