// Package httputil содержит общие для обработчиков и middleware константы и функции записи ответа.
package httputil

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/models"
)

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderRequestID       = "X-Request-ID"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"

	// Сообщения об ошибках, видимые клиенту
	MessageInvalidURL     = "invalid url"
	MessageShortNotFound  = "No short URL for given input was found"
	MessageNotFound       = "Not Found"
	MessageInternalError  = "Internal Server Error"
	MessageTooManyRequest = "Too many requests, please try again later"
)

// WriteJSON записывает data в формате JSON с заданным статусом
func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.Error("Error writing JSON response", zap.Error(err))
	}
}

// WriteJSONError записывает тело вида {"error": message}
func WriteJSONError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	WriteJSON(w, logger, status, models.ErrorResponse{Error: message})
}
