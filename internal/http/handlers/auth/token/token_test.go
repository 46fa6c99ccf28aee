package token

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/nova-news/internal/lib/jwt"
	"github.com/magabrotheeeer/nova-news/internal/models"
)

// MockUsers реализует интерфейс token.Users
type MockUsers struct {
	mock.Mock
}

func (m *MockUsers) UpsertOnLogin(ctx context.Context, req models.DummyUser) (*models.User, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*models.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockMaker реализует интерфейс jwt.Maker
type MockMaker struct {
	mock.Mock
}

func (m *MockMaker) GenerateToken(email string) (string, error) {
	args := m.Called(email)
	return args.String(0), args.Error(1)
}

func (m *MockMaker) ParseToken(tokenStr string) (*jwt.Claims, error) {
	args := m.Called(tokenStr)
	if res := args.Get(0); res != nil {
		return res.(*jwt.Claims), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestTokenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMocks     func(u *MockUsers, j *MockMaker)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная выдача токена",
			body: `{"email":"reader@example.com","name":"Читатель"}`,
			setupMocks: func(u *MockUsers, j *MockMaker) {
				u.On("UpsertOnLogin", mock.Anything, models.DummyUser{
					Email: "reader@example.com",
					Name:  "Читатель",
				}).Return(&models.User{Email: "reader@example.com", Name: "Читатель"}, nil)
				j.On("GenerateToken", "reader@example.com").Return("signed.jwt.token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"token":"signed.jwt.token"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{not json`,
			setupMocks:     func(_ *MockUsers, _ *MockMaker) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "невалидный e-mail",
			body:           `{"email":"not-an-email","name":"Читатель"}`,
			setupMocks:     func(_ *MockUsers, _ *MockMaker) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email`,
		},
		{
			name: "ошибка сохранения пользователя",
			body: `{"email":"reader@example.com","name":"Читатель"}`,
			setupMocks: func(u *MockUsers, _ *MockMaker) {
				u.On("UpsertOnLogin", mock.Anything, mock.Anything).
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not save user"`,
		},
		{
			name: "ошибка генерации токена",
			body: `{"email":"reader@example.com","name":"Читатель"}`,
			setupMocks: func(u *MockUsers, j *MockMaker) {
				u.On("UpsertOnLogin", mock.Anything, mock.Anything).
					Return(&models.User{Email: "reader@example.com"}, nil)
				j.On("GenerateToken", "reader@example.com").Return("", errors.New("sign error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not issue token"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUsers := new(MockUsers)
			mockMaker := new(MockMaker)
			tt.setupMocks(mockUsers, mockMaker)

			handler := New(logger, mockUsers, mockMaker)

			req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockUsers.AssertExpectations(t)
			mockMaker.AssertExpectations(t)
		})
	}
}
