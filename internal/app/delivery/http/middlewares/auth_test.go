package middlewares

import (
	"context"
	"errors"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) (string, error) {
	args := m.Called(ctx, session, exp)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) DestroySession(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func TestAuthenticate(t *testing.T) {
	logger := zap.NewNop()

	t.Run("missing token is rejected with 401", func(t *testing.T) {
		mockSession := new(MockSessionService)
		m := NewMiddlewares(logger, mockSession, nil)

		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run without a token")
		}))

		req := httptest.NewRequest("GET", "/onboarding", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockSession.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("malformed authorization header is treated as missing", func(t *testing.T) {
		mockSession := new(MockSessionService)
		m := NewMiddlewares(logger, mockSession, nil)

		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with a malformed header")
		}))

		req := httptest.NewRequest("GET", "/onboarding", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Basic abc123")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired session propagates the session error", func(t *testing.T) {
		mockSession := new(MockSessionService)
		mockSession.On("GetSessionData", mock.Anything, "stale-token").
			Return("", exceptions.ErrTokenInvalidOrExpired(errors.New("redis: nil")))

		m := NewMiddlewares(logger, mockSession, nil)
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run with an expired session")
		}))

		req := httptest.NewRequest("GET", "/onboarding", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer stale-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token puts the session payload into the context", func(t *testing.T) {
		mockSession := new(MockSessionService)
		mockSession.On("GetSessionData", mock.Anything, "good-token").
			Return(`{"userId":"user-1"}`, nil)

		m := NewMiddlewares(logger, mockSession, nil)

		var sessionData string
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionData, _ = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest("GET", "/onboarding", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, `{"userId":"user-1"}`, sessionData)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	logger := zap.NewNop()
	m := NewMiddlewares(logger, nil, nil)

	t.Run("echoes a client-supplied request id", func(t *testing.T) {
		var ctxRequestID string
		var fromClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-42")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-42", ctxRequestID)
		assert.True(t, fromClient)
		assert.Equal(t, "client-id-42", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("generates a request id when the client sends none", func(t *testing.T) {
		var ctxRequestID string
		var fromClient bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			fromClient, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest("GET", "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, ctxRequestID)
		assert.False(t, fromClient)
		assert.Equal(t, ctxRequestID, rec.Header().Get(constvars.HeaderXRequestID))
	})
}
