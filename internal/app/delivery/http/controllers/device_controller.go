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

type DeviceController struct {
	Log           *zap.Logger
	DeviceUsecase contracts.DeviceUsecase
}

var (
	deviceControllerInstance *DeviceController
	onceDeviceController     sync.Once
)

func NewDeviceController(logger *zap.Logger, deviceUsecase contracts.DeviceUsecase) *DeviceController {
	onceDeviceController.Do(func() {
		instance := &DeviceController{
			Log:           logger,
			DeviceUsecase: deviceUsecase,
		}
		deviceControllerInstance = instance
	})
	return deviceControllerInstance
}

func (ctrl *DeviceController) ConnectDevice(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "DeviceController.ConnectDevice")
	if !ok {
		return
	}

	request := new(requests.ConnectDevice)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("DeviceController.ConnectDevice error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("DeviceController.ConnectDevice validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DeviceUsecase.ConnectDevice(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("DeviceController.ConnectDevice error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DeviceController.ConnectDevice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDeviceIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DeviceConnectedSuccess, response)
}

func (ctrl *DeviceController) ListDevices(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "DeviceController.ListDevices")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.DeviceUsecase.ListDevices(ctx, sessionData)
	if err != nil {
		ctrl.Log.Error("DeviceController.ListDevices error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeviceListSuccess, response)
}

func (ctrl *DeviceController) DisconnectDevice(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "DeviceController.DisconnectDevice")
	if !ok {
		return
	}

	deviceID := chi.URLParam(r, constvars.URLParamDeviceID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.DeviceUsecase.DisconnectDevice(ctx, sessionData, deviceID); err != nil {
		ctrl.Log.Error("DeviceController.DisconnectDevice error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeviceRemovedSuccess, nil)
}
