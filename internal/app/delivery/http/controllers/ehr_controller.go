package controllers

import (
	"context"
	"encoding/json"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type EHRController struct {
	Log              *zap.Logger
	EHRImportUsecase contracts.EHRImportUsecase
	InternalConfig   *config.InternalConfig
}

var (
	ehrControllerInstance *EHRController
	onceEHRController     sync.Once
)

func NewEHRController(logger *zap.Logger, ehrImportUsecase contracts.EHRImportUsecase, internalConfig *config.InternalConfig) *EHRController {
	onceEHRController.Do(func() {
		instance := &EHRController{
			Log:              logger,
			EHRImportUsecase: ehrImportUsecase,
			InternalConfig:   internalConfig,
		}
		ehrControllerInstance = instance
	})
	return ehrControllerInstance
}

func (ctrl *EHRController) ImportText(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EHRController.ImportText requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("EHRController.ImportText called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		ctrl.Log.Error("EHRController.ImportText sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	request := new(requests.ImportEHRText)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("EHRController.ImportText error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("EHRController.ImportText validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EHRImportUsecase.ImportText(ctx, sessionData, request.RawJSON)
	if err != nil {
		ctrl.Log.Error("EHRController.ImportText error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EHRController.ImportText succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EHRImportSuccess, response)
}

func (ctrl *EHRController) ImportFile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("EHRController.ImportFile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("EHRController.ImportFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		ctrl.Log.Error("EHRController.ImportFile sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	maxBytes := ctrl.InternalConfig.App.EHRUploadMaxSizeInMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		ctrl.Log.Error("EHRController.ImportFile error parsing multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		ctrl.Log.Error("EHRController.ImportFile error reading file field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.EHRImportUsecase.ImportFile(ctx, sessionData, header.Filename, file, header.Size)
	if err != nil {
		ctrl.Log.Error("EHRController.ImportFile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("EHRController.ImportFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EHRImportSuccess, response)
}
