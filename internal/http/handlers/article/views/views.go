// Package views реализует HTTP-обработчик инкремента счётчика просмотров.
// Аутентификация не требуется, счётчик увеличивается на единицу за вызов.
package views

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// Service описывает интерфейс инкремента счётчика просмотров.
type Service interface {
	IncrementViews(ctx context.Context, id string) error
}

// Handler управляет HTTP-запросами на инкремент счётчика просмотров.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.views"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	err := h.service.IncrementViews(r.Context(), id)
	if errors.Is(err, storage.ErrArticleNotFound) {
		log.Error("article not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("article not found"))
		return
	}
	if err != nil {
		log.Error("failed to increment view count", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not increment view count"))
		return
	}

	render.JSON(w, r, response.OK())
}
