package middlewarectx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/nova-news/internal/lib/jwt"
	"github.com/magabrotheeeer/nova-news/internal/models"
	"github.com/magabrotheeeer/nova-news/internal/storage"
)

type UserDirectoryMock struct{ mock.Mock }

func (m *UserDirectoryMock) Get(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

// nextProbe фиксирует, дошёл ли запрос до конечного обработчика,
// и какой e-mail оказался в контексте.
type nextProbe struct {
	called bool
	email  string
}

func (p *nextProbe) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p.called = true
		p.email = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test_secret_key", time.Hour)
	validToken, err := maker.GenerateToken("reader@example.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
		expectedEmail  string
	}{
		{
			name:           "валидный токен пропускает запрос",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedEmail:  "reader@example.com",
		},
		{
			name:           "отсутствующий заголовок",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "заголовок без префикса Bearer",
			authHeader:     validToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "мусор вместо токена",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &nextProbe{}
			mw := JWTMiddleware(maker, newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			mw(probe.handler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, probe.called)
			if tt.expectNext {
				assert.Equal(t, tt.expectedEmail, probe.email)
			}
		})
	}
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	expiredMaker := jwt.NewMaker("test_secret_key", -time.Minute)
	expiredToken, err := expiredMaker.GenerateToken("reader@example.com")
	require.NoError(t, err)

	probe := &nextProbe{}
	mw := JWTMiddleware(jwt.NewMaker("test_secret_key", time.Hour), newNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+expiredToken)
	w := httptest.NewRecorder()

	mw(probe.handler()).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, probe.called)
}

func TestOptionalJWTMiddleware(t *testing.T) {
	maker := jwt.NewMaker("test_secret_key", time.Hour)
	validToken, err := maker.GenerateToken("reader@example.com")
	require.NoError(t, err)

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectNext     bool
		expectedEmail  string
	}{
		{
			name:           "анонимный запрос проходит без e-mail",
			authHeader:     "",
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedEmail:  "",
		},
		{
			name:           "валидный токен добавляет e-mail",
			authHeader:     "Bearer " + validToken,
			expectedStatus: http.StatusOK,
			expectNext:     true,
			expectedEmail:  "reader@example.com",
		},
		{
			name:           "присутствующий, но битый токен отклоняется",
			authHeader:     "Bearer not.a.token",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &nextProbe{}
			mw := OptionalJWTMiddleware(maker, newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()

			mw(probe.handler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, probe.called)
			if tt.expectNext {
				assert.Equal(t, tt.expectedEmail, probe.email)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		ctxEmail       string
		setupMock      func(m *UserDirectoryMock)
		expectedStatus int
		expectNext     bool
	}{
		{
			name:     "администратор проходит",
			ctxEmail: "admin@example.com",
			setupMock: func(m *UserDirectoryMock) {
				m.On("Get", mock.Anything, "admin@example.com").
					Return(&models.User{Email: "admin@example.com", IsAdmin: true}, nil).Once()
			},
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:     "обычный пользователь получает 403",
			ctxEmail: "reader@example.com",
			setupMock: func(m *UserDirectoryMock) {
				m.On("Get", mock.Anything, "reader@example.com").
					Return(&models.User{Email: "reader@example.com"}, nil).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:     "неизвестный пользователь получает 403",
			ctxEmail: "ghost@example.com",
			setupMock: func(m *UserDirectoryMock) {
				m.On("Get", mock.Anything, "ghost@example.com").
					Return(nil, storage.ErrUserNotFound).Once()
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "без аутентификации получает 401",
			ctxEmail:       "",
			setupMock:      func(_ *UserDirectoryMock) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := new(UserDirectoryMock)
			tt.setupMock(dir)

			probe := &nextProbe{}
			mw := AdminMiddleware(dir, newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.ctxEmail != "" {
				req = req.WithContext(context.WithValue(req.Context(), UserEmail, tt.ctxEmail))
			}
			w := httptest.NewRecorder()

			mw(probe.handler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, probe.called)

			dir.AssertExpectations(t)
		})
	}
}

func TestSelfMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		ctxEmail       string
		paramEmail     string
		expectedStatus int
		expectNext     bool
	}{
		{
			name:           "владелец записи проходит",
			ctxEmail:       "reader@example.com",
			paramEmail:     "reader@example.com",
			expectedStatus: http.StatusOK,
			expectNext:     true,
		},
		{
			name:           "чужой e-mail в маршруте получает 403",
			ctxEmail:       "reader@example.com",
			paramEmail:     "other@example.com",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "без аутентификации получает 401",
			ctxEmail:       "",
			paramEmail:     "reader@example.com",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			probe := &nextProbe{}
			mw := SelfMiddleware(newNoopLogger())

			req := httptest.NewRequest(http.MethodGet, "/users/"+tt.paramEmail, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("email", tt.paramEmail)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
			if tt.ctxEmail != "" {
				req = req.WithContext(context.WithValue(req.Context(), UserEmail, tt.ctxEmail))
			}
			w := httptest.NewRecorder()

			mw(probe.handler()).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectNext, probe.called)
		})
	}
}
