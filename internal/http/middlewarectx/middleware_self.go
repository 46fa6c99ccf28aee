package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/nova-news/internal/http/response"
)

// SelfMiddleware требует совпадения e-mail из токена с параметром {email}
// маршрута. Закрывает персональные эндпоинты от чужих пользователей.
// Ставится после JWTMiddleware.
func SelfMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SelfMiddleware"

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

			paramEmail := chi.URLParam(r, "email")
			if paramEmail != email {
				log.Error("email mismatch on self-scoped route",
					slog.String("token_email", email),
					slog.String("param_email", paramEmail))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("forbidden access"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
