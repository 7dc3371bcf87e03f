package vitals

import (
	"context"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

type MockVitalRepository struct {
	mock.Mock
}

func (m *MockVitalRepository) CreateVital(ctx context.Context, vital *models.Vital) (string, error) {
	args := m.Called(ctx, vital)
	return args.String(0), args.Error(1)
}

func (m *MockVitalRepository) FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.Vital, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vital), args.Error(1)
}

func (m *MockVitalRepository) CountByUserID(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockVitalRepository) DeleteByID(ctx context.Context, userID, vitalID string) error {
	args := m.Called(ctx, userID, vitalID)
	return args.Error(0)
}

const testSessionData = `{"userId":"user-1"}`

func newTestUsecase() (*vitalUsecase, *MockVitalRepository) {
	mockSession := new(MockSessionService)
	mockRepo := new(MockVitalRepository)

	internalConfig := &config.InternalConfig{
		App: config.App{BaseUrl: "http://localhost:8080/api/v1/"},
	}
	uc := NewVitalUsecase(mockSession, mockRepo, internalConfig).(*vitalUsecase)

	mockSession.On("ParseSessionData", mock.Anything, testSessionData).
		Return(&models.Session{UserID: "user-1"}, nil).Maybe()

	return uc, mockRepo
}

func TestVitalUsecase_CreateVital(t *testing.T) {
	t.Run("stamps a missing recordedAt with the current time", func(t *testing.T) {
		uc, mockRepo := newTestUsecase()
		mockRepo.On("CreateVital", mock.Anything, mock.AnythingOfType("*models.Vital")).Return("vital-1", nil)

		before := time.Now()
		vital, err := uc.CreateVital(context.Background(), testSessionData, &requests.CreateVital{
			Type:  "heart_rate",
			Value: 62,
			Unit:  "bpm",
		})

		assert.NoError(t, err)
		assert.Equal(t, "vital-1", vital.ID)
		assert.Equal(t, "user-1", vital.UserID)
		assert.False(t, vital.RecordedAt.Before(before))
	})

	t.Run("rejects a recordedAt in a non RFC3339 layout", func(t *testing.T) {
		uc, mockRepo := newTestUsecase()

		_, err := uc.CreateVital(context.Background(), testSessionData, &requests.CreateVital{
			Type:       "heart_rate",
			Value:      62,
			Unit:       "bpm",
			RecordedAt: "2024-05-15",
		})

		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "CreateVital", mock.Anything, mock.Anything)
	})
}

func TestVitalUsecase_ListVitals(t *testing.T) {
	t.Run("pages through the user's readings", func(t *testing.T) {
		uc, mockRepo := newTestUsecase()
		mockRepo.On("CountByUserID", mock.Anything, "user-1").Return(25, nil)
		mockRepo.On("FindByUserID", mock.Anything, "user-1", 10, 10).
			Return([]models.Vital{{UserID: "user-1", Type: "heart_rate"}}, nil)

		vitals, pagination, err := uc.ListVitals(context.Background(), testSessionData, &requests.Pagination{Page: 2, PageSize: 10})

		assert.NoError(t, err)
		assert.Len(t, vitals, 1)
		assert.Equal(t, 25, pagination.Total)
		assert.Equal(t, 2, pagination.Page)
		assert.NotEmpty(t, pagination.NextURL)
		assert.NotEmpty(t, pagination.PrevURL)
	})

	t.Run("last page has no next url", func(t *testing.T) {
		uc, mockRepo := newTestUsecase()
		mockRepo.On("CountByUserID", mock.Anything, "user-1").Return(25, nil)
		mockRepo.On("FindByUserID", mock.Anything, "user-1", 20, 10).
			Return([]models.Vital{}, nil)

		_, pagination, err := uc.ListVitals(context.Background(), testSessionData, &requests.Pagination{Page: 3, PageSize: 10})

		assert.NoError(t, err)
		assert.Empty(t, pagination.NextURL)
	})
}
