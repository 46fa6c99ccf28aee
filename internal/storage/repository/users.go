package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// UpsertUser сохраняет пользователя при первом входе и возвращает итоговую
// запись. Если e-mail уже зарегистрирован, существующая запись возвращается
// без изменений. Уникальный индекс по e-mail гарантирует, что при
// одновременных первых входах вставка выполнится ровно один раз.
func (s *Storage) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UpsertUser"

	_, err := s.DB.Exec(ctx, `
		INSERT INTO users (email, name, photo_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		user.Email, user.Name, user.PhotoURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GetUserByEmail(ctx, user.Email)
}

// GetUserByEmail возвращает пользователя по e-mail.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"

	u := &models.User{}
	err := s.DB.QueryRow(ctx, `
		SELECT email, name, photo_url, is_admin, premium_expiry, created_at
		FROM users
		WHERE email = $1`, email).
		Scan(&u.Email, &u.Name, &u.PhotoURL, &u.IsAdmin, &u.PremiumExpiry, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

// ListUsers возвращает всех пользователей.
func (s *Storage) ListUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListUsers"

	rows, err := s.DB.Query(ctx, `
		SELECT email, name, photo_url, is_admin, premium_expiry, created_at
		FROM users
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		if err := rows.Scan(&u.Email, &u.Name, &u.PhotoURL, &u.IsAdmin,
			&u.PremiumExpiry, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SetAdmin выставляет или снимает признак администратора.
func (s *Storage) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	const op = "storage.SetAdmin"

	commandTag, err := s.DB.Exec(ctx, `
		UPDATE users SET is_admin = $1 WHERE email = $2`, isAdmin, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return nil
}

// SetPremiumExpiry устанавливает дату истечения премиум-подписки.
// nil снимает подписку (лениво очищенное или никогда не оформленное состояние).
func (s *Storage) SetPremiumExpiry(ctx context.Context, email string, expiry *time.Time) error {
	const op = "storage.SetPremiumExpiry"

	commandTag, err := s.DB.Exec(ctx, `
		UPDATE users SET premium_expiry = $1 WHERE email = $2`, expiry, email)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if commandTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrUserNotFound)
	}
	return nil
}
