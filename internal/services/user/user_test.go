package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) UpsertUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *UserRepoMock) ListUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.User), args.Error(1)
}

func (m *UserRepoMock) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return m.Called(ctx, email, isAdmin).Error(0)
}

func TestUpsertOnLogin(t *testing.T) {
	t.Run("первый вход создаёт запись из профиля", func(t *testing.T) {
		repo := new(UserRepoMock)
		saved := &models.User{Email: "reader@example.com", Name: "Читатель"}
		repo.On("UpsertUser", mock.Anything, mock.MatchedBy(func(u models.User) bool {
			return u.Email == "reader@example.com" && u.Name == "Читатель" && !u.IsAdmin
		})).Return(saved, nil).Once()

		svc := NewUserService(repo)

		user, err := svc.UpsertOnLogin(context.Background(), models.DummyUser{
			Email: "reader@example.com",
			Name:  "Читатель",
		})
		require.NoError(t, err)
		assert.Equal(t, saved, user)

		repo.AssertExpectations(t)
	})

	t.Run("повторный вход возвращает существующую запись", func(t *testing.T) {
		repo := new(UserRepoMock)
		existing := &models.User{Email: "reader@example.com", Name: "Старое имя", IsAdmin: true}
		repo.On("UpsertUser", mock.Anything, mock.Anything).Return(existing, nil).Once()

		svc := NewUserService(repo)

		user, err := svc.UpsertOnLogin(context.Background(), models.DummyUser{
			Email: "reader@example.com",
			Name:  "Новое имя",
		})
		require.NoError(t, err)
		// Запись не перезаписывается при повторном входе
		assert.Equal(t, "Старое имя", user.Name)
		assert.True(t, user.IsAdmin)
	})

	t.Run("ошибка хранилища пробрасывается", func(t *testing.T) {
		repo := new(UserRepoMock)
		repo.On("UpsertUser", mock.Anything, mock.Anything).
			Return(nil, errors.New("db error")).Once()

		svc := NewUserService(repo)

		user, err := svc.UpsertOnLogin(context.Background(), models.DummyUser{Email: "reader@example.com"})
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestGet(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("GetUserByEmail", mock.Anything, "missing@example.com").
		Return(nil, storage.ErrUserNotFound).Once()

	svc := NewUserService(repo)

	user, err := svc.Get(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestSetAdmin(t *testing.T) {
	repo := new(UserRepoMock)
	repo.On("SetAdmin", mock.Anything, "reader@example.com", true).Return(nil).Once()

	svc := NewUserService(repo)

	err := svc.SetAdmin(context.Background(), "reader@example.com", true)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}
