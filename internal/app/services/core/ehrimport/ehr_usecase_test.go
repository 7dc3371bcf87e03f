package ehrimport

import (
	"context"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"io"
	"strings"
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

type MockOnboardingRepository struct {
	mock.Mock
}

func (m *MockOnboardingRepository) Find(ctx context.Context, userID string) (*models.OnboardingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OnboardingSession), args.Error(1)
}

func (m *MockOnboardingRepository) Save(ctx context.Context, session *models.OnboardingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockOnboardingRepository) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockStorageService struct {
	mock.Mock
}

func (m *MockStorageService) UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	args := m.Called(ctx, objectName, reader, size, contentType)
	return args.String(0), args.Error(1)
}

const testSessionData = `{"userId":"user-1"}`

func newTestUsecase() (*ehrImportUsecase, *MockOnboardingRepository, *MockStorageService) {
	mockSession := new(MockSessionService)
	mockRepo := new(MockOnboardingRepository)
	mockStorage := new(MockStorageService)

	uc := NewEHRImportUsecase(mockSession, mockRepo, mockStorage, 10).(*ehrImportUsecase)

	mockSession.On("ParseSessionData", mock.Anything, testSessionData).
		Return(&models.Session{UserID: "user-1"}, nil).Maybe()

	return uc, mockRepo, mockStorage
}

func TestEHRImportUsecase_ImportText(t *testing.T) {
	validExport := `{
		"demographics": {"firstName": "Dana", "lastName": "Rivera", "dateOfBirth": "1990-05-15", "biologicalSex": "female"},
		"medications": [{"name": "metformin"}, {"name": "lisinopril"}]
	}`

	t.Run("merges the import into the wizard and persists it", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase()
		wizard := &models.OnboardingSession{UserID: "user-1"}
		mockRepo.On("Find", mock.Anything, "user-1").Return(wizard, nil)
		mockRepo.On("Save", mock.Anything, wizard).Return(nil)

		result, err := uc.ImportText(context.Background(), testSessionData, validExport)

		assert.NoError(t, err)
		assert.Equal(t, 2, result.ImportedMedications)
		assert.Equal(t, 0, result.ImportedConditions)
		assert.Equal(t, constvars.DataSourceEHRUpload, wizard.Profile.DataSource)
		assert.Len(t, wizard.Profile.Medications, 2)

		stepValidity := map[string]bool{}
		for _, step := range result.State.Steps {
			stepValidity[step.ID] = step.Valid
		}
		valid, shown := stepValidity[constvars.StepMedicationsDet]
		assert.True(t, shown)
		assert.True(t, valid)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase()
		mockRepo.On("Find", mock.Anything, "user-1").Return(&models.OnboardingSession{UserID: "user-1"}, nil)

		_, err := uc.ImportText(context.Background(), testSessionData, `{"demographics": `)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects a document without usable demographics", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase()
		mockRepo.On("Find", mock.Anything, "user-1").Return(&models.OnboardingSession{UserID: "user-1"}, nil)

		_, err := uc.ImportText(context.Background(), testSessionData, `{"medications": [{"name": "metformin"}]}`)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnprocessableEntity, customErr.StatusCode)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("requires a started wizard", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase()
		mockRepo.On("Find", mock.Anything, "user-1").Return(nil, nil)

		_, err := uc.ImportText(context.Background(), testSessionData, `{}`)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}

func TestEHRImportUsecase_ImportFile(t *testing.T) {
	payload := `{"demographics": {"firstName": "Dana"}}`

	t.Run("archives the raw upload before parsing", func(t *testing.T) {
		uc, mockRepo, mockStorage := newTestUsecase()
		wizard := &models.OnboardingSession{UserID: "user-1"}
		mockRepo.On("Find", mock.Anything, "user-1").Return(wizard, nil)
		mockRepo.On("Save", mock.Anything, wizard).Return(nil)
		mockStorage.On("UploadObject", mock.Anything, mock.Anything, mock.Anything, int64(len(payload)), constvars.MIMEApplicationJSON).
			Return("export.json", nil)

		result, err := uc.ImportFile(context.Background(), testSessionData, "export.json", strings.NewReader(payload), int64(len(payload)))

		assert.NoError(t, err)
		assert.Equal(t, "Dana", result.Result.Demographics.FirstName)
		mockStorage.AssertExpectations(t)
	})

	t.Run("rejects an oversized upload before reading it", func(t *testing.T) {
		uc, _, mockStorage := newTestUsecase()

		tooBig := int64(11) << 20
		_, err := uc.ImportFile(context.Background(), testSessionData, "export.json", strings.NewReader(payload), tooBig)

		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusRequestEntityTooLarge, customErr.StatusCode)
		mockStorage.AssertNotCalled(t, "UploadObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
