package routers

import (
	"fmt"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/delivery/http/controllers"
	"healthpilot-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	onboardingController *controllers.OnboardingController,
	ehrController *controllers.EHRController,
	profileController *controllers.ProfileController,
	vitalController *controllers.VitalController,
	checklistController *controllers.ChecklistController,
	deviceController *controllers.DeviceController,
	mealPlanController *controllers.MealPlanController,
	chatController *controllers.ChatController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	bodyLimit := int64(internalConfig.App.RequestBodyLimitInMegabyte) << 20
	router.Use(middleware.RequestSize(bodyLimit))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRouter(r, middlewares, authController)
			})

			r.Route("/onboarding", func(r chi.Router) {
				attachOnboardingRouter(r, middlewares, onboardingController, ehrController)
			})

			r.Route("/profiles", func(r chi.Router) {
				attachProfileRouter(r, middlewares, profileController)
			})

			r.Route("/vitals", func(r chi.Router) {
				attachVitalRouter(r, middlewares, vitalController)
			})

			r.Route("/checklists", func(r chi.Router) {
				attachChecklistRouter(r, middlewares, checklistController)
			})

			r.Route("/devices", func(r chi.Router) {
				attachDeviceRouter(r, middlewares, deviceController)
			})

			r.Route("/meal-plans", func(r chi.Router) {
				attachMealPlanRouter(r, middlewares, mealPlanController)
			})

			r.Route("/chat", func(r chi.Router) {
				attachChatRouter(r, middlewares, chatController)
			})
		})
	})
}
