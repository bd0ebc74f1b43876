package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// securityHeaders задает заголовки безопасности, которые выставляются каждому ответу
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "SAMEORIGIN"},
	{"X-DNS-Prefetch-Control", "off"},
	{"X-Download-Options", "noopen"},
	{"X-Permitted-Cross-Domain-Policies", "none"},
	{"X-XSS-Protection", "0"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Origin-Agent-Cluster", "?1"},
	{"Strict-Transport-Security", "max-age=15552000; includeSubDomains"},
	{"Content-Security-Policy", "default-src 'self';base-uri 'self';font-src 'self' https: data:;" +
		"form-action 'self';frame-ancestors 'self';img-src 'self' data:;object-src 'none';" +
		"script-src 'self';script-src-attr 'none';style-src 'self' https: 'unsafe-inline';upgrade-insecure-requests"},
}

// SecureHeaders выставляет заголовки безопасности
func SecureHeaders(next http.Handler) http.Handler {
	h := next
	for i := len(securityHeaders) - 1; i >= 0; i-- {
		h = middleware.SetHeader(securityHeaders[i][0], securityHeaders[i][1])(h)
	}
	return h
}
