// Package novanews собирает зависимости основного приложения:
// хранилище, кеш, очередь событий модерации, сервисы и HTTP-сервер.
package novanews

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/nova-news/internal/cache"
	"github.com/magabrotheeeer/nova-news/internal/config"
	"github.com/magabrotheeeer/nova-news/internal/lib/jwt"
	"github.com/magabrotheeeer/nova-news/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/nova-news/internal/migrations"
	"github.com/magabrotheeeer/nova-news/internal/paymentprovider"
	articleservice "github.com/magabrotheeeer/nova-news/internal/services/article"
	entitlementservice "github.com/magabrotheeeer/nova-news/internal/services/entitlement"
	publisherservice "github.com/magabrotheeeer/nova-news/internal/services/publisher"
	userservice "github.com/magabrotheeeer/nova-news/internal/services/user"
	"github.com/magabrotheeeer/nova-news/internal/storage/repository"
)

// App хранит собранные зависимости и запускает HTTP-сервер.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	db       *repository.Storage
	cache    *cache.Cache
	rabbitCh *amqp.Channel
	rabbit   *amqp.Connection
}

// New инициализирует все зависимости приложения и регистрирует маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(ctx, cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(cfg.StorageConnectionString, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.AddressRabbit, cfg.RetriesRabbit, cfg.DelayRabbit)
	if err != nil {
		return nil, err
	}
	rabbitCh, err := rabbitmq.SetupChannel(rabbitConn, rabbitmq.GetModerationQueues())
	if err != nil {
		return nil, err
	}
	notifier := rabbitmq.NewNotifier(rabbitCh)

	jwtMaker := jwt.NewMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	providerClient := paymentprovider.NewClient(cfg.PaymentAPIKey, cfg.PaymentAPIURL)

	userService := userservice.NewUserService(db)
	entitlementService := entitlementservice.NewEntitlementService(db, cfg.SubscriptionTiers, logger)
	articleService := articleservice.NewArticleService(db, entitlementService, cacheRedis, notifier, logger)
	publisherService := publisherservice.NewPublisherService(db)

	router := chi.NewRouter()

	RegisterRoutes(router, logger, jwtMaker,
		userService, entitlementService, articleService, publisherService, providerClient)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:   srv,
		logger:   logger,
		db:       db,
		cache:    cacheRedis,
		rabbitCh: rabbitCh,
		rabbit:   rabbitConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.rabbitCh.Close()
		_ = a.rabbit.Close()
		_ = a.cache.Db.Close()
		a.db.Close()
		return err
	}
}
