// Package mine реализует HTTP-обработчик списка статей автора.
// Маршрут закрыт self-проверкой: автор видит только собственные статьи.
package mine

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
)

// Service описывает интерфейс бизнес-логики списка статей автора.
type Service interface {
	ListByAuthor(ctx context.Context, authorEmail string) ([]*models.Article, error)
}

// Handler управляет HTTP-запросами на список статей автора.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статьи текущего автора
// @Tags Articles
// @Produce  json
// @Security BearerAuth
// @Param email path string true "E-mail автора"
// @Success 200 {object} map[string]any "Список статей автора"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужие статьи"
// @Router /articles/mine/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.mine"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	articles, err := h.service.ListByAuthor(r.Context(), email)
	if err != nil {
		log.Error("failed to list author articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list articles"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"articles": articles,
	}))
}
