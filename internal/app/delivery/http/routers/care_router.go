package routers

import (
	"fmt"
	"healthpilot-service/internal/app/delivery/http/controllers"
	"healthpilot-service/internal/app/delivery/http/middlewares"
	"healthpilot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachProfileRouter(router chi.Router, middlewares *middlewares.Middlewares, profileController *controllers.ProfileController) {
	router.With(middlewares.Authenticate).Get("/me", profileController.GetMyProfile)
}

func attachVitalRouter(router chi.Router, middlewares *middlewares.Middlewares, vitalController *controllers.VitalController) {
	router.With(middlewares.Authenticate).Post("/", vitalController.CreateVital)
	router.With(middlewares.Authenticate).Get("/", vitalController.ListVitals)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamVitalID), vitalController.DeleteVital)
}

func attachChecklistRouter(router chi.Router, middlewares *middlewares.Middlewares, checklistController *controllers.ChecklistController) {
	router.With(middlewares.Authenticate).Post("/", checklistController.CreateItem)
	router.With(middlewares.Authenticate).Get("/", checklistController.ListItems)
	router.With(middlewares.Authenticate).Patch(fmt.Sprintf("/{%s}/toggle", constvars.URLParamChecklistID), checklistController.ToggleItem)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamChecklistID), checklistController.DeleteItem)
}

func attachDeviceRouter(router chi.Router, middlewares *middlewares.Middlewares, deviceController *controllers.DeviceController) {
	router.With(middlewares.Authenticate).Post("/", deviceController.ConnectDevice)
	router.With(middlewares.Authenticate).Get("/", deviceController.ListDevices)
	router.With(middlewares.Authenticate).Delete(fmt.Sprintf("/{%s}", constvars.URLParamDeviceID), deviceController.DisconnectDevice)
}

func attachMealPlanRouter(router chi.Router, middlewares *middlewares.Middlewares, mealPlanController *controllers.MealPlanController) {
	router.With(middlewares.Authenticate).Get("/daily", mealPlanController.GetDailyPlan)
}

func attachChatRouter(router chi.Router, middlewares *middlewares.Middlewares, chatController *controllers.ChatController) {
	router.With(middlewares.Authenticate).Post("/completions", chatController.CreateCompletion)
}
