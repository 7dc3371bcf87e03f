package controllers

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

type MealPlanController struct {
	Log             *zap.Logger
	MealPlanUsecase contracts.MealPlanUsecase
}

var (
	mealPlanControllerInstance *MealPlanController
	onceMealPlanController     sync.Once
)

func NewMealPlanController(logger *zap.Logger, mealPlanUsecase contracts.MealPlanUsecase) *MealPlanController {
	onceMealPlanController.Do(func() {
		instance := &MealPlanController{
			Log:             logger,
			MealPlanUsecase: mealPlanUsecase,
		}
		mealPlanControllerInstance = instance
	})
	return mealPlanControllerInstance
}

func (ctrl *MealPlanController) GetDailyPlan(w http.ResponseWriter, r *http.Request) {
	requestID, sessionData, ok := contextScope(ctrl.Log, w, r, "MealPlanController.GetDailyPlan")
	if !ok {
		return
	}

	date := r.URL.Query().Get("date")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MealPlanUsecase.DailyPlan(ctx, sessionData, date)
	if err != nil {
		ctrl.Log.Error("MealPlanController.GetDailyPlan error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MealPlanListSuccess, response)
}
