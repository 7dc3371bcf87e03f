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

	"go.uber.org/zap"
)

type OnboardingController struct {
	Log               *zap.Logger
	OnboardingUsecase contracts.OnboardingUsecase
}

var (
	onboardingControllerInstance *OnboardingController
	onceOnboardingController     sync.Once
)

func NewOnboardingController(logger *zap.Logger, onboardingUsecase contracts.OnboardingUsecase) *OnboardingController {
	onceOnboardingController.Do(func() {
		instance := &OnboardingController{
			Log:               logger,
			OnboardingUsecase: onboardingUsecase,
		}
		onboardingControllerInstance = instance
	})
	return onboardingControllerInstance
}

func (ctrl *OnboardingController) Start(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "Start")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.Start(ctx, sessionData)
	if err != nil {
		ctrl.logUsecaseError("Start", requestID, err)
		ctrl.writeError(w, err)
		return
	}

	ctrl.Log.Info("OnboardingController.Start succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OnboardingStartedSuccess, response)
}

func (ctrl *OnboardingController) GetState(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "GetState")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.State(ctx, sessionData)
	if err != nil {
		ctrl.logUsecaseError("GetState", requestID, err)
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OnboardingStateSuccess, response)
}

func (ctrl *OnboardingController) SaveStep(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "SaveStep")
	if !ok {
		return
	}

	request := new(requests.SaveOnboardingStep)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("OnboardingController.SaveStep error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.writeError(w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("OnboardingController.SaveStep validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.writeError(w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.SaveStep(ctx, sessionData, request)
	if err != nil {
		ctrl.logUsecaseError("SaveStep", requestID, err)
		ctrl.writeError(w, err)
		return
	}

	ctrl.Log.Info("OnboardingController.SaveStep succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStepIDKey, request.StepID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OnboardingStepSavedSuccess, response)
}

func (ctrl *OnboardingController) Advance(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "Advance")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.Advance(ctx, sessionData)
	if err != nil {
		ctrl.logUsecaseError("Advance", requestID, err)
		ctrl.writeError(w, err)
		return
	}

	ctrl.Log.Info("OnboardingController.Advance succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingStepIndexKey, response.CurrentStepIndex),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OnboardingAdvancedSuccess, response)
}

func (ctrl *OnboardingController) Retreat(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "Retreat")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.Retreat(ctx, sessionData)
	if err != nil {
		ctrl.logUsecaseError("Retreat", requestID, err)
		ctrl.writeError(w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OnboardingRetreatedSuccess, response)
}

func (ctrl *OnboardingController) Commit(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := ctrl.requestContext(w, r, "Commit")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.OnboardingUsecase.Commit(ctx, sessionData)
	if err != nil {
		ctrl.logUsecaseError("Commit", requestID, err)
		if err == context.DeadlineExceeded {
			ctrl.writeError(w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.writeError(w, err)
		return
	}

	ctrl.Log.Info("OnboardingController.Commit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, response.ProfileID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.OnboardingCommittedSuccess, response)
}

func (ctrl *OnboardingController) requestContext(w http.ResponseWriter, r *http.Request, operation string) (requestID, sessionData string, ok bool) {
	requestID, found := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !found || requestID == "" {
		ctrl.Log.Error("OnboardingController." + operation + " requestID not found in context")
		ctrl.writeError(w, exceptions.ErrMissingRequestID(nil))
		return "", "", false
	}
	ctrl.Log.Info("OnboardingController."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionData, found = r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !found || sessionData == "" {
		ctrl.Log.Error("OnboardingController."+operation+" sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		ctrl.writeError(w, exceptions.ErrMissingSessionData(nil))
		return "", "", false
	}
	return requestID, sessionData, true
}

func (ctrl *OnboardingController) logUsecaseError(operation, requestID string, err error) {
	ctrl.Log.Error("OnboardingController."+operation+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
}

func (ctrl *OnboardingController) writeError(w http.ResponseWriter, err error) {
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
