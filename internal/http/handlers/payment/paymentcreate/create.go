// Package paymentcreate реализует HTTP-обработчик создания платёжного намерения.
//
// Сервер запрашивает у провайдера client secret и отдаёт его клиенту;
// детали платежа на сервере не хранятся, выдача подписки выполняется
// отдельным запросом после подтверждения оплаты.
package paymentcreate

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/paymentprovider"
)

// Request — входные данные создания платёжного намерения.
type Request struct {
	Amount   int64  `json:"amount" validate:"required,gt=0"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// Provider описывает интерфейс платёжного провайдера.
type Provider interface {
	CreatePaymentIntent(req paymentprovider.CreateIntentRequest) (*paymentprovider.CreateIntentResponse, error)
}

// Handler управляет HTTP-запросами на создание платёжного намерения.
type Handler struct {
	log      *slog.Logger
	provider Provider
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и провайдером.
func New(log *slog.Logger, provider Provider) *Handler {
	return &Handler{
		log:      log,
		provider: provider,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать платёжное намерение
// @Tags Payments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body Request true "Сумма и валюта"
// @Success 200 {object} map[string]any "Client secret для подтверждения оплаты"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка провайдера"
// @Router /payments [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"
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

	intent, err := h.provider.CreatePaymentIntent(paymentprovider.CreateIntentRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
	})
	if err != nil {
		log.Error("failed to create payment intent", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create payment intent"))
		return
	}

	log.Info("created payment intent", slog.String("intent_id", intent.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"client_secret": intent.ClientSecret,
	}))
}
