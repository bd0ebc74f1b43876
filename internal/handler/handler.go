// Package handler реализует HTTP-интерфейс сервиса сокращения URL.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/InQaaaaGit/shorturl/internal/httputil"
	"github.com/InQaaaaGit/shorturl/internal/middleware"
	"github.com/InQaaaaGit/shorturl/internal/models"
	"github.com/InQaaaaGit/shorturl/internal/service"
)

const urlFormField = "url"

// URLService определяет интерфейс сервиса, необходимый обработчикам
type URLService interface {
	Submit(ctx context.Context, originalURL string) (models.URLRecord, error)
	Resolve(ctx context.Context, shortID int) (string, bool)
	CheckConnection(ctx context.Context) error
}

// Handler содержит обработчики HTTP-запросов
type Handler struct {
	service URLService
	logger  *zap.Logger
}

// NewHandler создает обработчики поверх сервиса
func NewHandler(service URLService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleShortenURL обрабатывает POST /api/shorturl с полем формы url.
// Ошибки проверки URL возвращаются со статусом 200 и телом {"error": "invalid url"}.
func (h *Handler) HandleShortenURL(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Info("Error parsing form", zap.String("request_id", middleware.GetRequestID(r.Context())), zap.Error(err))
		httputil.WriteJSONError(w, h.logger, http.StatusOK, httputil.MessageInvalidURL)
		return
	}
	originalURL := r.PostForm.Get(urlFormField)

	record, err := h.service.Submit(r.Context(), originalURL)
	if err != nil {
		if errors.Is(err, service.ErrInvalidURL) {
			httputil.WriteJSONError(w, h.logger, http.StatusOK, httputil.MessageInvalidURL)
			return
		}
		h.logger.Error("Error creating short URL",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.String("url", originalURL),
			zap.Error(err))
		httputil.WriteJSONError(w, h.logger, http.StatusInternalServerError, httputil.MessageInternalError)
		return
	}

	httputil.WriteJSON(w, h.logger, http.StatusOK, record)
}

// HandleRedirect обрабатывает GET /api/shorturl/{id}
func (h *Handler) HandleRedirect(w http.ResponseWriter, r *http.Request) {
	shortID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteJSONError(w, h.logger, http.StatusNotFound, httputil.MessageShortNotFound)
		return
	}

	originalURL, ok := h.service.Resolve(r.Context(), shortID)
	if !ok {
		httputil.WriteJSONError(w, h.logger, http.StatusNotFound, httputil.MessageShortNotFound)
		return
	}

	http.Redirect(w, r, originalURL, http.StatusFound)
}

// HandlePing проверяет доступность хранилища
func (h *Handler) HandlePing(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CheckConnection(r.Context()); err != nil {
		h.logger.Error("Storage connection error", zap.Error(err))
		httputil.WriteJSONError(w, h.logger, http.StatusInternalServerError, httputil.MessageInternalError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
