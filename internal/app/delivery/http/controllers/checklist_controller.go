package controllers

import (
	"context"
	"encoding/json"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ChecklistController struct {
	Log              *zap.Logger
	ChecklistUsecase contracts.ChecklistUsecase
}

var (
	checklistControllerInstance *ChecklistController
	onceChecklistController     sync.Once
)

func NewChecklistController(logger *zap.Logger, checklistUsecase contracts.ChecklistUsecase) *ChecklistController {
	onceChecklistController.Do(func() {
		instance := &ChecklistController{
			Log:              logger,
			ChecklistUsecase: checklistUsecase,
		}
		checklistControllerInstance = instance
	})
	return checklistControllerInstance
}

func (ctrl *ChecklistController) CreateItem(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "ChecklistController.CreateItem")
	if !ok {
		return
	}

	request := new(requests.CreateChecklistItem)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("ChecklistController.CreateItem error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("ChecklistController.CreateItem validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChecklistUsecase.CreateItem(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("ChecklistController.CreateItem error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ChecklistCreatedSuccess, response)
}

func (ctrl *ChecklistController) ListItems(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "ChecklistController.ListItems")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChecklistUsecase.ListItems(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("ChecklistController.ListItems error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistListSuccess, response)
}

func (ctrl *ChecklistController) ToggleItem(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "ChecklistController.ToggleItem")
	if !ok {
		return
	}

	itemID := chi.URLParam(r, constvars.URLParamChecklistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ChecklistUsecase.ToggleItem(ctx, sessionData, itemID)
	if err != nil {
		ctrl.Log.Error("ChecklistController.ToggleItem error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistToggledSuccess, response)
}

func (ctrl *ChecklistController) DeleteItem(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "ChecklistController.DeleteItem")
	if !ok {
		return
	}

	itemID := chi.URLParam(r, constvars.URLParamChecklistID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ChecklistUsecase.DeleteItem(ctx, sessionData, itemID); err != nil {
		ctrl.Log.Error("ChecklistController.DeleteItem error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistDeletedSuccess, nil)
}
