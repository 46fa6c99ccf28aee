package middlewarectx

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// UserDirectory описывает поиск пользователя для проверки привилегий.
type UserDirectory interface {
	Get(ctx context.Context, email string) (*models.User, error)
}

// AdminMiddleware требует признак администратора у аутентифицированного
// пользователя. Ставится после JWTMiddleware: отсутствие e-mail в контексте
// означает ошибку конфигурации маршрута и отвечает 401.
func AdminMiddleware(users UserDirectory, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			email := EmailFromContext(r.Context())
			if email == "" {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			user, err := users.Get(r.Context(), email)
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Error("unknown user in admin check", slog.String("email", email))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}
			if err != nil {
				log.Error("failed to look up user", sl.Err(err))
				w.WriteHeader(http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal service error"))
				return
			}
			if !user.IsAdmin {
				log.Error("admin access denied", slog.String("email", email))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
