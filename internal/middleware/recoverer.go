package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/httputil"
)

// Recoverer перехватывает панику в обработчике, пишет подробности в лог
// и отвечает клиенту 500 без внутренних деталей
func Recoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// Прерывание соединения обрабатывает сам net/http
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				logger.Error("Panic recovered",
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)

				if r.Header.Get("Connection") != "Upgrade" {
					httputil.WriteJSONError(w, logger, http.StatusInternalServerError, httputil.MessageInternalError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
