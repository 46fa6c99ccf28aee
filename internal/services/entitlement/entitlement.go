// Package services содержит логику бизнес-уровня для премиум-подписок:
// вычисление текущего статуса с ленивой очисткой и выдачу подписки по тарифу.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/nova-news/internal/lib/sl"
	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// ErrUnknownTier запрошенный тариф подписки не настроен.
var ErrUnknownTier = errors.New("unknown subscription tier")

// UserRepository описывает контракт для работы с записями пользователей.
type UserRepository interface {
	// GetUserByEmail возвращает пользователя или storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// SetPremiumExpiry устанавливает дату истечения подписки, nil снимает её.
	SetPremiumExpiry(ctx context.Context, email string, expiry *time.Time) error
}

// EntitlementService вычисляет статус премиум-подписки и выдаёт подписку.
//
// Вычисление не является чистым чтением: найденная просроченная подписка
// очищается в хранилище. Очистка выполняется по принципу best-effort —
// неудачная запись не влияет на решение текущего запроса, устаревшая дата
// будет очищена при следующем вычислении.
type EntitlementService struct {
	users UserRepository
	tiers map[string]time.Duration
	log   *slog.Logger
	now   func() time.Time
}

// NewEntitlementService создает новый экземпляр EntitlementService.
// tiers сопоставляет имя тарифа длительности подписки.
func NewEntitlementService(users UserRepository, tiers map[string]time.Duration, log *slog.Logger) *EntitlementService {
	return &EntitlementService{
		users: users,
		tiers: tiers,
		log:   log,
		now:   time.Now,
	}
}

// Evaluate возвращает true, если у пользователя действует премиум-подписка.
//
// Отсутствующий пользователь и пустая дата истечения означают отсутствие
// подписки. Просроченная дата очищается в хранилище.
func (s *EntitlementService) Evaluate(ctx context.Context, email string) (bool, error) {
	const op = "entitlement.Evaluate"

	user, err := s.users.GetUserByEmail(ctx, email)
	if errors.Is(err, storage.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if user.PremiumExpiry == nil {
		return false, nil
	}

	if !s.now().Before(*user.PremiumExpiry) {
		if err := s.users.SetPremiumExpiry(ctx, email, nil); err != nil {
			s.log.Warn("failed to clear expired premium subscription",
				slog.String("email", email), sl.Err(err))
		}
		return false, nil
	}
	return true, nil
}

// Grant выдаёт подписку по тарифу: дата истечения = сейчас + длительность
// тарифа. Неизвестный тариф отклоняется с ErrUnknownTier.
func (s *EntitlementService) Grant(ctx context.Context, email, tier string) (*time.Time, error) {
	const op = "entitlement.Grant"

	offset, ok := s.tiers[tier]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %s", op, ErrUnknownTier, tier)
	}

	expiry := s.now().Add(offset)
	if err := s.users.SetPremiumExpiry(ctx, email, &expiry); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("granted premium subscription",
		slog.String("email", email),
		slog.String("tier", tier),
		slog.Time("expiry", expiry))
	return &expiry, nil
}
