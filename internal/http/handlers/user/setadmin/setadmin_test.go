package setadmin

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// MockService реализует интерфейс setadmin.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) SetAdmin(ctx context.Context, email string, isAdmin bool) error {
	return m.Called(ctx, email, isAdmin).Error(0)
}

func TestSetAdminHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "назначение администратора",
			body: `{"is_admin":true}`,
			setupMock: func(m *MockService) {
				m.On("SetAdmin", mock.Anything, "reader@example.com", true).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name: "снятие признака администратора",
			body: `{"is_admin":false}`,
			setupMock: func(m *MockService) {
				m.On("SetAdmin", mock.Anything, "reader@example.com", false).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"OK"`,
		},
		{
			name:           "отсутствующее поле is_admin",
			body:           `{}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field IsAdmin is a required field`,
		},
		{
			name: "пользователь не найден",
			body: `{"is_admin":true}`,
			setupMock: func(m *MockService) {
				m.On("SetAdmin", mock.Anything, "reader@example.com", true).
					Return(storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"user not found"`,
		},
		{
			name: "ошибка хранилища",
			body: `{"is_admin":true}`,
			setupMock: func(m *MockService) {
				m.On("SetAdmin", mock.Anything, "reader@example.com", true).
					Return(errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not update user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPatch, "/users/reader@example.com/admin", strings.NewReader(tt.body))
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
