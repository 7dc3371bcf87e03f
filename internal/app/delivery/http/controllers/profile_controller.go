package controllers

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
	SessionService contracts.SessionService
}

var (
	profileControllerInstance *ProfileController
	onceProfileController     sync.Once
)

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase, sessionService contracts.SessionService) *ProfileController {
	onceProfileController.Do(func() {
		instance := &ProfileController{
			Log:            logger,
			ProfileUsecase: profileUsecase,
			SessionService: sessionService,
		}
		profileControllerInstance = instance
	})
	return profileControllerInstance
}

func (ctrl *ProfileController) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ProfileController.GetMyProfile requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ProfileController.GetMyProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok || sessionData == "" {
		ctrl.Log.Error("ProfileController.GetMyProfile sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, err := ctrl.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.ProfileUsecase.FindByUserID(ctx, session.UserID)
	if err != nil {
		ctrl.Log.Error("ProfileController.GetMyProfile error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileGetSuccess, response)
}
