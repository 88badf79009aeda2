package handler

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger logs one line per request.
func requestLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Info("HTTP Request",
				zap.Int("status", rec.status),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("query", r.URL.RawQuery),
				zap.String("ip", r.RemoteAddr),
				zap.Duration("cost", time.Since(start)),
			)
		})
	}
}

// recoveryLogger reports panics caught by handlers.RecoveryHandler through zap.
type recoveryLogger struct {
	log *zap.Logger
}

func (l recoveryLogger) Println(v ...any) {
	l.log.Error("panic while serving request",
		zap.String("panic", fmt.Sprint(v...)),
		zap.Stack("stack"),
	)
}
