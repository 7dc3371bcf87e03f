package vitals

import (
	"context"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"time"
)

type vitalUsecase struct {
	SessionService  contracts.SessionService
	VitalRepository contracts.VitalRepository
	InternalConfig  *config.InternalConfig
}

func NewVitalUsecase(sessionService contracts.SessionService, vitalRepository contracts.VitalRepository, internalConfig *config.InternalConfig) contracts.VitalUsecase {
	return &vitalUsecase{
		SessionService:  sessionService,
		VitalRepository: vitalRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *vitalUsecase) CreateVital(ctx context.Context, sessionData string, request *requests.CreateVital) (*models.Vital, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	recordedAt := time.Now()
	if request.RecordedAt != "" {
		recordedAt, err = time.Parse(time.RFC3339, request.RecordedAt)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
	}

	now := time.Now()
	vital := &models.Vital{
		UserID:     session.UserID,
		Type:       request.Type,
		Value:      request.Value,
		Unit:       request.Unit,
		RecordedAt: recordedAt,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	vitalID, err := uc.VitalRepository.CreateVital(ctx, vital)
	if err != nil {
		return nil, err
	}
	vital.ID = vitalID
	return vital, nil
}

func (uc *vitalUsecase) ListVitals(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]models.Vital, *responses.Pagination, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, nil, err
	}

	total, err := uc.VitalRepository.CountByUserID(ctx, session.UserID)
	if err != nil {
		return nil, nil, err
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	vitals, err := uc.VitalRepository.FindByUserID(ctx, session.UserID, offset, pagination.PageSize)
	if err != nil {
		return nil, nil, err
	}

	baseURL := uc.InternalConfig.App.BaseUrl + constvars.ResourceVitals
	paginationData := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, baseURL)
	return vitals, paginationData, nil
}

func (uc *vitalUsecase) DeleteVital(ctx context.Context, sessionData string, vitalID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.VitalRepository.DeleteByID(ctx, session.UserID, vitalID)
}
