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

type VitalController struct {
	Log          *zap.Logger
	VitalUsecase contracts.VitalUsecase
}

var (
	vitalControllerInstance *VitalController
	onceVitalController     sync.Once
)

func NewVitalController(logger *zap.Logger, vitalUsecase contracts.VitalUsecase) *VitalController {
	onceVitalController.Do(func() {
		instance := &VitalController{
			Log:          logger,
			VitalUsecase: vitalUsecase,
		}
		vitalControllerInstance = instance
	})
	return vitalControllerInstance
}

func (ctrl *VitalController) CreateVital(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "VitalController.CreateVital")
	if !ok {
		return
	}

	request := new(requests.CreateVital)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("VitalController.CreateVital error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("VitalController.CreateVital validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.VitalUsecase.CreateVital(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("VitalController.CreateVital error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.VitalCreatedSuccess, response)
}

func (ctrl *VitalController) ListVitals(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "VitalController.ListVitals")
	if !ok {
		return
	}

	pagination := utils.BuildPaginationRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, paginationData, err := ctrl.VitalUsecase.ListVitals(ctx, sessionData, pagination)
	if err != nil {
		ctrl.Log.Error("VitalController.ListVitals error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.VitalListSuccess, paginationData, response)
}

func (ctrl *VitalController) DeleteVital(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "VitalController.DeleteVital")
	if !ok {
		return
	}

	vitalID := chi.URLParam(r, constvars.URLParamVitalID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.VitalUsecase.DeleteVital(ctx, sessionData, vitalID); err != nil {
		ctrl.Log.Error("VitalController.DeleteVital error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VitalDeletedSuccess, nil)
}
