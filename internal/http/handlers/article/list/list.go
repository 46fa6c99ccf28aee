// Package list реализует HTTP-обработчик списка одобренных статей
// с фильтрами по заголовку, издателю и метке.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
)

// Service описывает интерфейс бизнес-логики списка статей.
type Service interface {
	List(ctx context.Context, filter models.ArticleFilter, limit, offset int) ([]*models.Article, error)
}

// Handler управляет HTTP-запросами на список одобренных статей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Список одобренных статей
// @Description Фильтры title, publisher и tag соединяются через AND, подстроки без учёта регистра.
// @Tags Articles
// @Produce  json
// @Param title query string false "Подстрока заголовка"
// @Param publisher query string false "Подстрока имени издателя"
// @Param tag query string false "Подстрока метки"
// @Param limit query int false "Размер страницы" default(20)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} map[string]any "Список статей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /articles [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	filter := models.ArticleFilter{
		Title:     r.URL.Query().Get("title"),
		Publisher: r.URL.Query().Get("publisher"),
		Tag:       r.URL.Query().Get("tag"),
	}
	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	articles, err := h.service.List(r.Context(), filter, limit, offset)
	if err != nil {
		log.Error("failed to list articles", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list articles"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"articles": articles,
	}))
}

func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val < 0 {
		return def
	}
	return val
}
