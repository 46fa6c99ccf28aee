// Package read реализует HTTP-обработчик чтения статьи по идентификатору.
//
// Обычная статья доступна всем, включая анонимов. Премиум-статья требует
// токена идентичности и действующей подписки.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/middlewarectx"
	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
	article "github.com/magabrotheeeer/nova-news/internal/services/article"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// Service описывает интерфейс бизнес-логики чтения статьи.
type Service interface {
	GetByID(ctx context.Context, id, requesterEmail string) (*models.Article, error)
}

// Handler управляет HTTP-запросами на чтение статьи.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить статью по ID
// @Description Премиум-статья требует аутентификации и действующей подписки.
// @Tags Articles
// @Produce  json
// @Param id path string true "ID статьи"
// @Success 200 {object} map[string]any "Статья"
// @Failure 401 {object} response.ErrorResponse "Премиум-статья без аутентификации"
// @Failure 403 {object} response.ErrorResponse "Нет действующей подписки"
// @Failure 404 {object} response.ErrorResponse "Статья не найдена"
// @Router /articles/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.read"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	requesterEmail := middlewarectx.EmailFromContext(r.Context())

	result, err := h.service.GetByID(r.Context(), id, requesterEmail)
	switch {
	case errors.Is(err, storage.ErrArticleNotFound):
		log.Error("article not found", slog.String("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("article not found"))
		return
	case errors.Is(err, article.ErrAuthRequired):
		log.Error("premium article requested anonymously", slog.String("id", id))
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("authentication required"))
		return
	case errors.Is(err, article.ErrPremiumRequired):
		log.Error("premium subscription required", slog.String("id", id),
			slog.String("email", requesterEmail))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("premium subscription required"))
		return
	case err != nil:
		log.Error("failed to read article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read article"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"article": result,
	}))
}
