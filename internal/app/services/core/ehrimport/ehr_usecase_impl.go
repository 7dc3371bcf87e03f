package ehrimport

import (
	"bytes"
	"context"
	"fmt"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/app/services/core/onboarding"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"io"
	"time"

	"github.com/goccy/go-json"
)

type ehrImportUsecase struct {
	SessionService       contracts.SessionService
	OnboardingRepository contracts.OnboardingSessionRepository
	StorageService       contracts.StorageService
	MaxUploadSizeInMB    int64
}

func NewEHRImportUsecase(
	sessionService contracts.SessionService,
	onboardingRepository contracts.OnboardingSessionRepository,
	storageService contracts.StorageService,
	maxUploadSizeInMB int64,
) contracts.EHRImportUsecase {
	return &ehrImportUsecase{
		SessionService:       sessionService,
		OnboardingRepository: onboardingRepository,
		StorageService:       storageService,
		MaxUploadSizeInMB:    maxUploadSizeInMB,
	}
}

func (uc *ehrImportUsecase) ImportText(ctx context.Context, sessionData string, rawJSON string) (*responses.EHRImport, error) {
	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.importDocument(ctx, wizard, []byte(rawJSON))
}

func (uc *ehrImportUsecase) ImportFile(ctx context.Context, sessionData string, filename string, file io.Reader, size int64) (*responses.EHRImport, error) {
	maxBytes := uc.MaxUploadSizeInMB << 20
	if size > maxBytes {
		return nil, exceptions.ErrEHRFileTooLarge(uc.MaxUploadSizeInMB)
	}

	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	payload, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, exceptions.ErrEHRInvalidFormat(err)
	}
	if int64(len(payload)) > maxBytes {
		return nil, exceptions.ErrEHRFileTooLarge(uc.MaxUploadSizeInMB)
	}

	// The raw upload is archived before parsing so a rejected document can
	// still be inspected afterwards.
	objectName := fmt.Sprintf("ehr-uploads/%s/%d-%s", wizard.UserID, time.Now().Unix(), filename)
	if _, err := uc.StorageService.UploadObject(ctx, objectName, bytes.NewReader(payload), int64(len(payload)), constvars.MIMEApplicationJSON); err != nil {
		return nil, err
	}

	return uc.importDocument(ctx, wizard, payload)
}

func (uc *ehrImportUsecase) importDocument(ctx context.Context, wizard *models.OnboardingSession, payload []byte) (*responses.EHRImport, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, exceptions.ErrEHRInvalidFormat(err)
	}

	result := Parse(doc)
	if result == nil {
		return nil, exceptions.ErrEHRInsufficientDocument()
	}

	wizard.Profile.Merge(ToProfileDocument(result))
	if err := uc.OnboardingRepository.Save(ctx, wizard); err != nil {
		return nil, err
	}

	return &responses.EHRImport{
		ImportedConditions:  len(result.Conditions),
		ImportedMedications: len(result.Medications),
		ImportedAllergies:   len(result.Allergies),
		ImportedSurgeries:   len(result.Surgeries),
		ImportedFamily:      len(result.FamilyHistory),
		State:               onboarding.BuildState(wizard),
		Result:              *result,
	}, nil
}

func (uc *ehrImportUsecase) findWizard(ctx context.Context, sessionData string) (*models.OnboardingSession, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	wizard, err := uc.OnboardingRepository.Find(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if wizard == nil {
		return nil, exceptions.ErrOnboardingSessionNotFound(nil)
	}
	return wizard, nil
}
