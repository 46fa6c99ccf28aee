// Package status реализует HTTP-обработчик вычисления статуса премиум-подписки.
//
// Вычисление не является чистым чтением: просроченная подписка лениво
// очищается в хранилище при первом обращении.
package status

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
)

// Service описывает интерфейс вычисления статуса подписки.
type Service interface {
	Evaluate(ctx context.Context, email string) (bool, error)
}

// Handler управляет HTTP-запросами на вычисление статуса подписки.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Статус премиум-подписки
// @Tags Subscription
// @Produce  json
// @Security BearerAuth
// @Param email path string true "E-mail пользователя"
// @Success 200 {object} map[string]any "Текущий статус"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужая запись"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /subscription/{email} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.status"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	email := chi.URLParam(r, "email")

	isSubscribed, err := h.service.Evaluate(r.Context(), email)
	if err != nil {
		log.Error("failed to evaluate subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not evaluate subscription"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"is_subscribed": isSubscribed,
	}))
}
