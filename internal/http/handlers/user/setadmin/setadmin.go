// Package setadmin реализует HTTP-обработчик смены признака администратора.
package setadmin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// Request — входные данные смены признака администратора.
type Request struct {
	IsAdmin *bool `json:"is_admin" validate:"required"`
}

// Service описывает интерфейс бизнес-логики смены признака администратора.
type Service interface {
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// Handler управляет HTTP-запросами на смену признака администратора.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить признак администратора
// @Tags Users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param email path string true "E-mail пользователя"
// @Param request body Request true "Новое значение признака"
// @Success 200 {object} response.Response "Признак обновлён"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Требуются права администратора"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Router /users/{email}/admin [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.setadmin"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	email := chi.URLParam(r, "email")
	err := h.service.SetAdmin(r.Context(), email, *req.IsAdmin)
	if errors.Is(err, storage.ErrUserNotFound) {
		log.Error("user not found", slog.String("email", email))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to set admin flag", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not update user"))
		return
	}

	log.Info("updated admin flag", slog.String("email", email), slog.Bool("is_admin", *req.IsAdmin))
	render.JSON(w, r, response.OK())
}
