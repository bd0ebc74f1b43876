// Package models содержит структуры данных сервиса сокращения URL.
package models

// URLRecord представляет одно соответствие короткого идентификатора исходному URL
type URLRecord struct {
	OriginalURL string `json:"original_url"`
	ShortURL    int    `json:"short_url"`
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}
