package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/delivery/http/controllers"
	"healthpilot-service/internal/app/delivery/http/middlewares"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
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

type MockOnboardingUsecase struct {
	mock.Mock
}

func (m *MockOnboardingUsecase) Start(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingState), args.Error(1)
}

func (m *MockOnboardingUsecase) State(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingState), args.Error(1)
}

func (m *MockOnboardingUsecase) SaveStep(ctx context.Context, sessionData string, request *requests.SaveOnboardingStep) (*responses.OnboardingState, error) {
	args := m.Called(ctx, sessionData, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingState), args.Error(1)
}

func (m *MockOnboardingUsecase) Advance(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingState), args.Error(1)
}

func (m *MockOnboardingUsecase) Retreat(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingState), args.Error(1)
}

func (m *MockOnboardingUsecase) Commit(ctx context.Context, sessionData string) (*responses.OnboardingCommit, error) {
	args := m.Called(ctx, sessionData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.OnboardingCommit), args.Error(1)
}

type MockEHRImportUsecase struct {
	mock.Mock
}

func (m *MockEHRImportUsecase) ImportText(ctx context.Context, sessionData string, rawJSON string) (*responses.EHRImport, error) {
	args := m.Called(ctx, sessionData, rawJSON)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.EHRImport), args.Error(1)
}

func (m *MockEHRImportUsecase) ImportFile(ctx context.Context, sessionData string, filename string, file io.Reader, size int64) (*responses.EHRImport, error) {
	args := m.Called(ctx, sessionData, filename, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.EHRImport), args.Error(1)
}

const testSessionData = `{"userId":"user-1"}`

func newOnboardingRouter(mockUsecase *MockOnboardingUsecase, mockEHR *MockEHRImportUsecase) (chi.Router, *MockSessionService) {
	logger := zap.NewNop()

	mockSession := new(MockSessionService)
	mockSession.On("GetSessionData", mock.Anything, "good-token").
		Return(testSessionData, nil).Maybe()

	internalConfig := &config.InternalConfig{
		App: config.App{EHRUploadMaxSizeInMB: 10},
	}

	middlewareInstance := middlewares.NewMiddlewares(logger, mockSession, internalConfig)
	onboardingController := controllers.NewOnboardingController(logger, mockUsecase)
	ehrController := controllers.NewEHRController(logger, mockEHR, internalConfig)

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachOnboardingRouter(router, middlewareInstance, onboardingController, ehrController)

	return router, mockSession
}

func TestOnboardingRouter(t *testing.T) {
	mockUsecase := new(MockOnboardingUsecase)
	mockEHR := new(MockEHRImportUsecase)
	router, _ := newOnboardingRouter(mockUsecase, mockEHR)

	state := &responses.OnboardingState{
		CurrentStepIndex: 0,
		CurrentStepID:    constvars.StepDataSource,
		Steps: []responses.OnboardingStep{
			{ID: constvars.StepDataSource, Title: "How would you like to add your health data?", Valid: false},
		},
	}

	t.Run("requires a bearer token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockUsecase.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
	})

	t.Run("start returns the wizard state", func(t *testing.T) {
		mockUsecase.On("Start", mock.Anything, testSessionData).Return(state, nil).Once()

		req := httptest.NewRequest("POST", "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Success)
	})

	t.Run("save step validates the payload", func(t *testing.T) {
		jsonBody, _ := json.Marshal(map[string]interface{}{"data": map[string]interface{}{}})

		req := httptest.NewRequest("PUT", "/steps", bytes.NewBuffer(jsonBody))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "SaveStep", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("advance refusal surfaces as 422", func(t *testing.T) {
		mockUsecase.On("Advance", mock.Anything, testSessionData).
			Return(nil, exceptions.ErrOnboardingStepInvalid(constvars.StepBasicInfo)).Once()

		req := httptest.NewRequest("POST", "/advance", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Success)
	})

	t.Run("commit returns the new profile id", func(t *testing.T) {
		mockUsecase.On("Commit", mock.Anything, testSessionData).
			Return(&responses.OnboardingCommit{ProfileID: "profile-123"}, nil).Once()

		req := httptest.NewRequest("POST", "/commit", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("ehr text import passes the raw document through", func(t *testing.T) {
		mockEHR.On("ImportText", mock.Anything, testSessionData, `{"demographics":{"firstName":"Dana"}}`).
			Return(&responses.EHRImport{State: state}, nil).Once()

		jsonBody, _ := json.Marshal(requests.ImportEHRText{RawJSON: `{"demographics":{"firstName":"Dana"}}`})

		req := httptest.NewRequest("POST", "/ehr-import", bytes.NewBuffer(jsonBody))
		req.Header.Set(constvars.HeaderAuthorization, "Bearer good-token")
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockEHR.AssertExpectations(t)
	})
}
