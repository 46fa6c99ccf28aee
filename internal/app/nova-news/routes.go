// Package novanews предоставляет маршруты для основного приложения.
package novanews

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/create"
	articlelist "github.com/magabrotheeeer/nova-news/internal/http/handlers/article/list"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/listall"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/mine"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/read"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/remove"
	articlestatus "github.com/magabrotheeeer/nova-news/internal/http/handlers/article/status"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/update"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/article/views"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/auth/token"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/payment/paymentcreate"
	publishercreate "github.com/magabrotheeeer/nova-news/internal/http/handlers/publisher/create"
	publisherlist "github.com/magabrotheeeer/nova-news/internal/http/handlers/publisher/list"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/subscription/grant"
	substatus "github.com/magabrotheeeer/nova-news/internal/http/handlers/subscription/status"
	userget "github.com/magabrotheeeer/nova-news/internal/http/handlers/user/get"
	userlist "github.com/magabrotheeeer/nova-news/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/nova-news/internal/http/handlers/user/setadmin"
	"github.com/magabrotheeeer/nova-news/internal/http/middlewarectx"
	"github.com/magabrotheeeer/nova-news/internal/lib/jwt"
	"github.com/magabrotheeeer/nova-news/internal/paymentprovider"
	articleservice "github.com/magabrotheeeer/nova-news/internal/services/article"
	entitlementservice "github.com/magabrotheeeer/nova-news/internal/services/entitlement"
	publisherservice "github.com/magabrotheeeer/nova-news/internal/services/publisher"
	userservice "github.com/magabrotheeeer/nova-news/internal/services/user"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker,
	userService *userservice.UserService,
	entitlementService *entitlementservice.EntitlementService,
	articleService *articleservice.ArticleService,
	publisherService *publisherservice.PublisherService,
	providerClient *paymentprovider.Client,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/jwt", token.New(logger, userService, jwtMaker).ServeHTTP)
		r.Get("/articles", articlelist.New(logger, articleService).ServeHTTP)
		r.Patch("/articles/{id}/views", views.New(logger, articleService).ServeHTTP)
		r.Get("/publishers", publisherlist.New(logger, publisherService).ServeHTTP)

		// Чтение статьи: токен не обязателен, но учитывается для премиум-статей
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.OptionalJWTMiddleware(jwtMaker, logger))
			r.Get("/articles/{id}", read.New(logger, articleService).ServeHTTP)
		})

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			r.Post("/articles", create.New(logger, articleService, userService).ServeHTTP)
			r.Put("/articles/{id}", update.New(logger, articleService).ServeHTTP)
			r.Post("/payments", paymentcreate.New(logger, providerClient).ServeHTTP)

			// Маршруты, доступные только владельцу записи
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.SelfMiddleware(logger))
				r.Get("/users/{email}", userget.New(logger, userService).ServeHTTP)
				r.Get("/articles/mine/{email}", mine.New(logger, articleService).ServeHTTP)
				r.Get("/subscription/{email}", substatus.New(logger, entitlementService).ServeHTTP)
				r.Post("/subscription/{email}", grant.New(logger, entitlementService).ServeHTTP)
			})

			// Маршруты администратора
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(userService, logger))
				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Patch("/users/{email}/admin", setadmin.New(logger, userService).ServeHTTP)
				r.Get("/articles/all", listall.New(logger, articleService).ServeHTTP)
				r.Patch("/articles/{id}/status", articlestatus.New(logger, articleService).ServeHTTP)
				r.Delete("/articles/{id}", remove.New(logger, articleService).ServeHTTP)
				r.Post("/publishers", publishercreate.New(logger, publisherService).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
