package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
)

type VitalUsecase interface {
	CreateVital(ctx context.Context, sessionData string, request *requests.CreateVital) (*models.Vital, error)
	ListVitals(ctx context.Context, sessionData string, pagination *requests.Pagination) ([]models.Vital, *responses.Pagination, error)
	DeleteVital(ctx context.Context, sessionData string, vitalID string) error
}

type VitalRepository interface {
	CreateVital(ctx context.Context, vital *models.Vital) (string, error)
	FindByUserID(ctx context.Context, userID string, offset, limit int) ([]models.Vital, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	DeleteByID(ctx context.Context, userID, vitalID string) error
}

type ChecklistUsecase interface {
	CreateItem(ctx context.Context, sessionData string, request *requests.CreateChecklistItem) (*models.ChecklistItem, error)
	ListItems(ctx context.Context, sessionData string) ([]models.ChecklistItem, error)
	ToggleItem(ctx context.Context, sessionData string, itemID string) (*models.ChecklistItem, error)
	DeleteItem(ctx context.Context, sessionData string, itemID string) error
}

type ChecklistRepository interface {
	CreateItem(ctx context.Context, item *models.ChecklistItem) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]models.ChecklistItem, error)
	FindByID(ctx context.Context, userID, itemID string) (*models.ChecklistItem, error)
	UpdateCompleted(ctx context.Context, userID, itemID string, completed bool) error
	DeleteByID(ctx context.Context, userID, itemID string) error
}

type DeviceUsecase interface {
	ConnectDevice(ctx context.Context, sessionData string, request *requests.ConnectDevice) (*models.Device, error)
	ListDevices(ctx context.Context, sessionData string) ([]models.Device, error)
	DisconnectDevice(ctx context.Context, sessionData string, deviceID string) error
}

type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *models.Device) (string, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Device, error)
	DeleteByID(ctx context.Context, userID, deviceID string) error
}
