package checklists

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/exceptions"
	"time"
)

type checklistUsecase struct {
	SessionService      contracts.SessionService
	ChecklistRepository contracts.ChecklistRepository
}

func NewChecklistUsecase(sessionService contracts.SessionService, checklistRepository contracts.ChecklistRepository) contracts.ChecklistUsecase {
	return &checklistUsecase{
		SessionService:      sessionService,
		ChecklistRepository: checklistRepository,
	}
}

func (uc *checklistUsecase) CreateItem(ctx context.Context, sessionData string, request *requests.CreateChecklistItem) (*models.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	item := &models.ChecklistItem{
		UserID:  session.UserID,
		Title:   request.Title,
		Notes:   request.Notes,
		DueDate: request.DueDate,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	itemID, err := uc.ChecklistRepository.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = itemID
	return item, nil
}

func (uc *checklistUsecase) ListItems(ctx context.Context, sessionData string) ([]models.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return uc.ChecklistRepository.FindByUserID(ctx, session.UserID)
}

func (uc *checklistUsecase) ToggleItem(ctx context.Context, sessionData string, itemID string) (*models.ChecklistItem, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	item, err := uc.ChecklistRepository.FindByID(ctx, session.UserID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, exceptions.ErrResourceNotFound(nil)
	}

	item.Completed = !item.Completed
	if err := uc.ChecklistRepository.UpdateCompleted(ctx, session.UserID, itemID, item.Completed); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *checklistUsecase) DeleteItem(ctx context.Context, sessionData string, itemID string) error {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return err
	}
	return uc.ChecklistRepository.DeleteByID(ctx, session.UserID, itemID)
}
