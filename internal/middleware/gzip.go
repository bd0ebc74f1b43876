package middleware

import (
	"compress/gzip"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/httputil"
)

// compressibleTypes перечисляет типы содержимого, ответы с которыми сжимаются
var compressibleTypes = []string{
	httputil.MIMEApplicationJSON,
	httputil.MIMETextHTML,
	httputil.MIMETextPlain,
	"text/css",
	"text/javascript",
	"application/javascript",
}

var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

// GzipMiddleware распаковывает тела запросов в gzip и сжимает текстовые ответы,
// если клиент поддерживает gzip
func GzipMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Если запрос сжат, распаковываем его
			if strings.Contains(r.Header.Get(httputil.HeaderContentEncoding), httputil.EncodingGzip) {
				if r.Body == nil || r.Body == http.NoBody {
					httputil.WriteJSONError(w, logger, http.StatusBadRequest, "empty request body")
					return
				}

				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					logger.Info("Invalid gzip request body", zap.Error(err))
					httputil.WriteJSONError(w, logger, http.StatusBadRequest, "invalid gzip body")
					return
				}
				defer gz.Close()
				r.Body = gz
				r.Header.Del(httputil.HeaderContentEncoding)
				r.Header.Del(httputil.HeaderContentLength)
				r.ContentLength = -1
			}

			if r.Method == http.MethodHead ||
				!strings.Contains(r.Header.Get(httputil.HeaderAcceptEncoding), httputil.EncodingGzip) {
				next.ServeHTTP(w, r)
				return
			}

			gw := &gzipResponseWriter{ResponseWriter: w}
			defer func() {
				if err := gw.Close(); err != nil {
					logger.Error("Error closing gzip writer", zap.Error(err))
				}
			}()

			next.ServeHTTP(gw, r)
		})
	}
}

// gzipResponseWriter решает, сжимать ли ответ, в момент записи заголовков
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

// WriteHeader включает сжатие для подходящих статуса и типа содержимого
func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	h := w.Header()
	if shouldCompress(statusCode, h) {
		h.Set(httputil.HeaderContentEncoding, httputil.EncodingGzip)
		h.Del(httputil.HeaderContentLength)
		h.Add("Vary", httputil.HeaderAcceptEncoding)

		gz := gzipWriterPool.Get().(*gzip.Writer)
		gz.Reset(w.ResponseWriter)
		w.gz = gz
	}

	w.ResponseWriter.WriteHeader(statusCode)
}

// Write записывает данные в сжатый поток, если сжатие включено
func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		if w.Header().Get(httputil.HeaderContentType) == "" {
			w.Header().Set(httputil.HeaderContentType, http.DetectContentType(b))
		}
		w.WriteHeader(http.StatusOK)
	}
	if w.gz != nil {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// Close завершает сжатый поток и возвращает writer в пул
func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	err := w.gz.Close()
	gzipWriterPool.Put(w.gz)
	w.gz = nil
	return err
}

func shouldCompress(statusCode int, h http.Header) bool {
	switch {
	case statusCode < http.StatusOK,
		statusCode == http.StatusNoContent,
		statusCode == http.StatusPartialContent,
		statusCode == http.StatusNotModified:
		return false
	case h.Get(httputil.HeaderContentEncoding) != "":
		return false
	}

	contentType := h.Get(httputil.HeaderContentType)
	for _, t := range compressibleTypes {
		if strings.HasPrefix(contentType, t) {
			return true
		}
	}
	return false
}
