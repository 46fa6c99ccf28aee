// Package create реализует HTTP-обработчик публикации новой статьи.
//
// Автор берётся из токена идентичности. Подписчик публикует без ограничений,
// автор без подписки — ровно одну статью.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nova-news/internal/http/middlewarectx"
	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
	article "github.com/magabrotheeeer/nova-news/internal/services/article"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// Service описывает интерфейс бизнес-логики публикации статьи.
type Service interface {
	Submit(ctx context.Context, authorEmail, authorName string, req models.DummyArticle) (string, error)
}

// Users описывает поиск записи автора.
type Users interface {
	Get(ctx context.Context, email string) (*models.User, error)
}

// Handler управляет HTTP-запросами на публикацию статьи.
type Handler struct {
	log      *slog.Logger
	service  Service
	users    Users
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисами.
func New(log *slog.Logger, service Service, users Users) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		users:    users,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Опубликовать статью
// @Description Создает статью в статусе pending. Автор без подписки может опубликовать одну статью.
// @Tags Articles
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyArticle true "Данные статьи"
// @Success 200 {object} map[string]any "ID созданной статьи"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Исчерпана квота бесплатной публикации"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /articles [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.article.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyArticle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	email := middlewarectx.EmailFromContext(r.Context())
	if email == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	author, err := h.users.Get(r.Context(), email)
	if errors.Is(err, storage.ErrUserNotFound) {
		log.Error("author not registered", slog.String("email", email))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden access"))
		return
	}
	if err != nil {
		log.Error("failed to look up author", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit article"))
		return
	}

	id, err := h.service.Submit(r.Context(), author.Email, author.Name, req)
	if errors.Is(err, article.ErrQuotaExceeded) {
		log.Error("article quota exceeded", slog.String("email", email))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("article quota exceeded, subscription required"))
		return
	}
	if err != nil {
		log.Error("failed to submit article", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not submit article"))
		return
	}

	log.Info("submitted article", slog.String("id", id))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"id": id,
	}))
}
