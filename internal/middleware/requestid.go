package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/InQaaaaGit/shorturl/internal/httputil"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

// RequestIDKey используется как ключ для хранения идентификатора запроса в контексте
const RequestIDKey contextKey = "request_id"

// maxRequestIDLength ограничивает длину идентификатора, принятого от клиента
const maxRequestIDLength = 128

// RequestID присваивает запросу идентификатор: берет его из заголовка X-Request-ID
// или генерирует новый UUID. Идентификатор возвращается клиенту в том же заголовке.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(httputil.HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		w.Header().Set(httputil.HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID извлекает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
