package grant

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	entitlement "github.com/magabrotheeeer/nova-news/internal/services/entitlement"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// MockService реализует интерфейс grant.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Grant(ctx context.Context, email, tier string) (*time.Time, error) {
	args := m.Called(ctx, email, tier)
	if res := args.Get(0); res != nil {
		return res.(*time.Time), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGrantHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	expiry := time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная выдача подписки",
			body: `{"tier":"5days"}`,
			setupMock: func(m *MockService) {
				m.On("Grant", mock.Anything, "reader@example.com", "5days").
					Return(&expiry, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"premium_expiry":"2025-06-20T12:00:00Z"`,
		},
		{
			name: "неизвестный тариф",
			body: `{"tier":"forever"}`,
			setupMock: func(m *MockService) {
				m.On("Grant", mock.Anything, "reader@example.com", "forever").
					Return(nil, entitlement.ErrUnknownTier)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"error":"unknown subscription tier"`,
		},
		{
			name: "пользователь не найден",
			body: `{"tier":"5days"}`,
			setupMock: func(m *MockService) {
				m.On("Grant", mock.Anything, "reader@example.com", "5days").
					Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name:           "пустой тариф",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Tier is a required field`,
		},
		{
			name: "ошибка хранилища",
			body: `{"tier":"5days"}`,
			setupMock: func(m *MockService) {
				m.On("Grant", mock.Anything, "reader@example.com", "5days").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not grant subscription"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/subscription/reader@example.com", strings.NewReader(tt.body))
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", "reader@example.com")
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
