package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func TestGzipMiddleware(t *testing.T) {
	tests := []struct {
		name               string
		acceptEncoding     string
		contentType        string
		status             int
		body               string
		expectedCompressed bool
	}{
		{
			name:               "Compress JSON when client supports gzip",
			acceptEncoding:     "gzip, deflate",
			contentType:        "application/json",
			status:             http.StatusOK,
			body:               `{"original_url":"https://www.example.com","short_url":1}`,
			expectedCompressed: true,
		},
		{
			name:               "Do not compress when client does not support gzip",
			acceptEncoding:     "",
			contentType:        "application/json",
			status:             http.StatusOK,
			body:               `{"error":"invalid url"}`,
			expectedCompressed: false,
		},
		{
			name:               "Compress JSON error responses",
			acceptEncoding:     "gzip",
			contentType:        "application/json",
			status:             http.StatusNotFound,
			body:               `{"error":"Not Found"}`,
			expectedCompressed: true,
		},
		{
			name:               "Do not compress binary content",
			acceptEncoding:     "gzip",
			contentType:        "image/png",
			status:             http.StatusOK,
			body:               "binary",
			expectedCompressed: false,
		},
		{
			name:               "Do not compress empty responses",
			acceptEncoding:     "gzip",
			contentType:        "application/json",
			status:             http.StatusNoContent,
			body:               "",
			expectedCompressed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			w := httptest.NewRecorder()

			GzipMiddleware(zap.NewNop())(handler).ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if !tt.expectedCompressed {
				assert.Empty(t, w.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, w.Body.String())
				return
			}

			assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
			assert.Contains(t, w.Header().Values("Vary"), "Accept-Encoding")
			gz, err := gzip.NewReader(w.Body)
			require.NoError(t, err)
			defer gz.Close()
			body, err := io.ReadAll(gz)
			require.NoError(t, err)
			assert.Equal(t, tt.body, string(body))
		})
	}
}

func TestGzipMiddleware_ImplicitHeader(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Без явного WriteHeader и Content-Type
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	GzipMiddleware(zap.NewNop())(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/html"))
}

func TestGzipMiddleware_RequestBody(t *testing.T) {
	tests := []struct {
		name           string
		body           []byte
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Decompress gzipped request",
			body:           gzipBytes(t, "url=https%3A%2F%2Fwww.example.com"),
			expectedStatus: http.StatusOK,
			expectedBody:   "url=https%3A%2F%2Fwww.example.com",
		},
		{
			name:           "Handle invalid gzip request",
			body:           []byte("invalid gzip data"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Handle empty request body",
			body:           nil,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received string
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				received = string(body)
				assert.Empty(t, r.Header.Get("Content-Encoding"))
				w.WriteHeader(http.StatusOK)
			})

			var body io.Reader = http.NoBody
			if tt.body != nil {
				body = bytes.NewReader(tt.body)
			}
			req := httptest.NewRequest(http.MethodPost, "/", body)
			req.Header.Set("Content-Encoding", "gzip")
			w := httptest.NewRecorder()

			GzipMiddleware(zap.NewNop())(handler).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedBody, received)
			} else {
				assert.Contains(t, w.Body.String(), `"error"`)
			}
		})
	}
}
