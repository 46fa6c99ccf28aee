// Package grant реализует HTTP-обработчик выдачи премиум-подписки по тарифу.
// Вызывается клиентом после подтверждения оплаты на его стороне.
package grant

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	entitlement "github.com/magabrotheeeer/nova-news/internal/services/entitlement"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// Request — входные данные выдачи подписки.
type Request struct {
	Tier string `json:"tier" validate:"required"`
}

// Service описывает интерфейс выдачи подписки.
type Service interface {
	Grant(ctx context.Context, email, tier string) (*time.Time, error)
}

// Handler управляет HTTP-запросами на выдачу подписки.
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
// @Summary Выдать премиум-подписку по тарифу
// @Tags Subscription
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param email path string true "E-mail пользователя"
// @Param request body Request true "Тариф подписки"
// @Success 200 {object} map[string]any "Дата истечения подписки"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужая запись"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 422 {object} response.ErrorResponse "Неизвестный тариф"
// @Router /subscription/{email} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.subscription.grant"
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

	expiry, err := h.service.Grant(r.Context(), email, req.Tier)
	if errors.Is(err, entitlement.ErrUnknownTier) {
		log.Error("unknown subscription tier", slog.String("tier", req.Tier))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("unknown subscription tier"))
		return
	}
	if errors.Is(err, storage.ErrUserNotFound) {
		log.Error("user not found", slog.String("email", email))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	}
	if err != nil {
		log.Error("failed to grant subscription", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not grant subscription"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"premium_expiry": expiry,
	}))
}
