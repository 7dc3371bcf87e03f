package devices

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"time"
)

const deviceStatusConnected = "connected"

type deviceUsecase struct {
	SessionService   contracts.SessionService
	DeviceRepository contracts.DeviceRepository
}

func NewDeviceUsecase(sessionService contracts.SessionService, deviceRepository contracts.DeviceRepository) contracts.DeviceUsecase {
	return &deviceUsecase{
		SessionService:   sessionService,
		DeviceRepository: deviceRepository,
	}
}

func (uc *deviceUsecase) ConnectDevice(ctx context.Context, sessionData string, request *requests.ConnectDevice) (*models.Device, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	device := &models.Device{
		UserID:      session.UserID,
		Vendor:      request.Vendor,
		Model:       request.Model,
		Status:      deviceStatusConnected,
		ConnectedAt: now,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	deviceID, err := uc.DeviceRepository.CreateDevice(ctx, device)
	if err != nil {
		return nil, err
	}
	device.ID = deviceID
	return device, nil
}

func (uc *deviceUsecase) ListDevices(ctx context.Context, sessionData string) ([]models.Device, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.DeviceRepository.FindByUserID(ctx, session.UserID)
}

func (uc *deviceUsecase) DisconnectDevice(ctx context.Context, sessionData string, deviceID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.DeviceRepository.DeleteByID(ctx, session.UserID, deviceID)
}
