package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"care4u-service/internal/app/config"
	"care4u-service/internal/app/models"
	"care4u-service/internal/pkg/constvars"
	"care4u-service/internal/pkg/exceptions"
	"care4u-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) Refresh(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionService) Destroy(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

const testJWTSecret = "test-secret"

func newTestMiddlewares(sessionService *MockSessionService) *Middlewares {
	return NewMiddlewares(sessionService, &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1},
	}, zap.NewNop())
}

func TestAuthentication(t *testing.T) {
	var capturedSession *models.Session
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedSession, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid token reaches the handler with session on context", func(t *testing.T) {
		capturedSession = nil
		sessionService := new(MockSessionService)
		mw := newTestMiddlewares(sessionService)

		token, err := utils.GenerateSessionJWT("sess-1", testJWTSecret, 1)
		require.NoError(t, err)

		session := &models.Session{SessionID: "sess-1", UserID: "user-1", Role: constvars.RoleDoctor}
		sessionService.On("Find", mock.Anything, "sess-1").Return(session, nil)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()

		mw.Authentication(handler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		require.NotNil(t, capturedSession)
		assert.Equal(t, "user-1", capturedSession.UserID)
	})

	t.Run("missing header", func(t *testing.T) {
		sessionService := new(MockSessionService)
		mw := newTestMiddlewares(sessionService)

		recorder := httptest.NewRecorder()
		mw.Authentication(handler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		sessionService := new(MockSessionService)
		mw := newTestMiddlewares(sessionService)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		recorder := httptest.NewRecorder()

		mw.Authentication(handler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		sessionService := new(MockSessionService)
		mw := newTestMiddlewares(sessionService)

		token, err := utils.GenerateSessionJWT("sess-1", "other-secret", 1)
		require.NoError(t, err)

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()

		mw.Authentication(handler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("expired session in redis", func(t *testing.T) {
		sessionService := new(MockSessionService)
		mw := newTestMiddlewares(sessionService)

		token, err := utils.GenerateSessionJWT("sess-gone", testJWTSecret, 1)
		require.NoError(t, err)
		sessionService.On("Find", mock.Anything, "sess-gone").
			Return(nil, exceptions.ErrSessionInvalid(nil))

		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		recorder := httptest.NewRecorder()

		mw.Authentication(handler).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestRequireRole(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	requestWithRole := func(role string) *http.Request {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		session := &models.Session{UserID: "user-1", Role: role}
		ctx := context.WithValue(request.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		return request.WithContext(ctx)
	}

	mw := newTestMiddlewares(new(MockSessionService))

	t.Run("doctor may pass the doctor gate", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mw.RequireDoctor(handler).ServeHTTP(recorder, requestWithRole(constvars.RoleDoctor))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("patient is rejected at the doctor gate", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mw.RequireDoctor(handler).ServeHTTP(recorder, requestWithRole(constvars.RolePatient))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("admin passes the doctor-or-admin gate", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mw.RequireDoctorOrAdmin(handler).ServeHTTP(recorder, requestWithRole(constvars.RoleAdmin))
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("no session at all", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		mw.RequirePatient(handler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
