// Package token реализует HTTP-обработчик выдачи токена идентичности.
//
// Обработчик принимает профиль, полученный от внешнего провайдера
// аутентификации, сохраняет пользователя при первом входе и возвращает
// подписанный токен с e-mail в claims. Сервер выданные токены не хранит:
// каждый токен самодостаточен и действителен до собственного истечения.
package token

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/jwt"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
)

// Users описывает интерфейс каталога пользователей для записи при первом входе.
type Users interface {
	UpsertOnLogin(ctx context.Context, req models.DummyUser) (*models.User, error)
}

// Handler управляет HTTP-запросами на выдачу токена идентичности.
type Handler struct {
	log      *slog.Logger
	users    Users
	jwtMaker jwt.Maker
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером, каталогом и кодеком токенов.
func New(log *slog.Logger, users Users, jwtMaker jwt.Maker) *Handler {
	return &Handler{
		log:      log,
		users:    users,
		jwtMaker: jwtMaker,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Выдать токен идентичности
// @Description Сохраняет пользователя при первом входе и возвращает подписанный токен.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.DummyUser true "Профиль пользователя"
// @Success 200 {object} map[string]any "Токен идентичности"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /jwt [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.token"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyUser
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

	user, err := h.users.UpsertOnLogin(r.Context(), req)
	if err != nil {
		log.Error("failed to upsert user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save user"))
		return
	}

	tokenStr, err := h.jwtMaker.GenerateToken(user.Email)
	if err != nil {
		log.Error("failed to generate token", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not issue token"))
		return
	}

	log.Info("issued identity token", slog.String("email", user.Email))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"token": tokenStr,
	}))
}
