package errors

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"gitea.jw6.us/james/taskdesk/internal/logger"
)

// LogError logs a server-side error with the request ID for correlation. The
// raw error never reaches the client.
func LogError(r *http.Request, message string, err error) {
	logger.Error(message, err, requestFields(r)...)
}

// LogInfo logs an informational message with request context.
func LogInfo(r *http.Request, message string) {
	logger.Info(message, requestFields(r)...)
}

func requestFields(r *http.Request) []zap.Field {
	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if requestID := middleware.GetReqID(r.Context()); requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	return fields
}
