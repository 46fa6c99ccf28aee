// Package services содержит логику бизнес-уровня для работы с каталогом пользователей.
package services

import (
	"context"

	"github.com/magabrotheeeer/nova-news/internal/models"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// UpsertUser сохраняет пользователя при первом входе и возвращает итоговую запись.
	UpsertUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя или storage.ErrUserNotFound.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)

	// SetAdmin выставляет признак администратора.
	SetAdmin(ctx context.Context, email string, isAdmin bool) error
}

// UserService отвечает за каталог пользователей: запись при первом входе,
// выдачу записей и управление признаком администратора.
type UserService struct {
	users UserRepository
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// UpsertOnLogin сохраняет пользователя при первом входе. Повторный вход с тем
// же e-mail возвращает существующую запись без изменений.
func (s *UserService) UpsertOnLogin(ctx context.Context, req models.DummyUser) (*models.User, error) {
	user := models.User{
		Email:    req.Email,
		Name:     req.Name,
		PhotoURL: req.PhotoURL,
	}
	return s.users.UpsertUser(ctx, user)
}

// Get возвращает пользователя по e-mail.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	return s.users.GetUserByEmail(ctx, email)
}

// ListAll возвращает всех пользователей, для администратора.
func (s *UserService) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.users.ListUsers(ctx)
}

// SetAdmin выставляет или снимает признак администратора.
func (s *UserService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return s.users.SetAdmin(ctx, email, isAdmin)
}
