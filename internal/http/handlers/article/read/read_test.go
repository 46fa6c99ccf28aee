package read

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

	"github.com/magabrotheeeer/nova-news/internal/http/middlewarectx"
	"github.com/magabrotheeeer/nova-news/internal/models"
	article "github.com/magabrotheeeer/nova-news/internal/services/article"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) GetByID(ctx context.Context, id, requesterEmail string) (*models.Article, error) {
	args := m.Called(ctx, id, requesterEmail)
	if res := args.Get(0); res != nil {
		return res.(*models.Article), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		id             string
		ctxEmail       string
		setupMock      func(m *MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:     "анонимное чтение обычной статьи",
			id:       "id-1",
			ctxEmail: "",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "id-1", "").
					Return(&models.Article{ID: "id-1", Title: "Обычная", Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Обычная"`,
		},
		{
			name:     "статья не найдена",
			id:       "missing",
			ctxEmail: "",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "missing", "").
					Return(nil, storage.ErrArticleNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"article not found"`,
		},
		{
			name:     "премиум-статья без аутентификации",
			id:       "id-2",
			ctxEmail: "",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "id-2", "").
					Return(nil, article.ErrAuthRequired)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"authentication required"`,
		},
		{
			name:     "премиум-статья без подписки",
			id:       "id-2",
			ctxEmail: "reader@example.com",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "id-2", "reader@example.com").
					Return(nil, article.ErrPremiumRequired)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"premium subscription required"`,
		},
		{
			name:     "премиум-статья с подпиской",
			id:       "id-2",
			ctxEmail: "reader@example.com",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "id-2", "reader@example.com").
					Return(&models.Article{ID: "id-2", Title: "Премиум", IsPremium: true, Status: models.StatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Премиум"`,
		},
		{
			name:     "ошибка сервиса",
			id:       "id-1",
			ctxEmail: "",
			setupMock: func(m *MockService) {
				m.On("GetByID", mock.Anything, "id-1", "").
					Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not read article"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/articles/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.ctxEmail != "" {
				req = req.WithContext(context.WithValue(req.Context(), middlewarectx.UserEmail, tt.ctxEmail))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
