package routers

import (
	"healthpilot-service/internal/app/delivery/http/controllers"
	"healthpilot-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOnboardingRouter(router chi.Router, middlewares *middlewares.Middlewares, onboardingController *controllers.OnboardingController, ehrController *controllers.EHRController) {
	router.With(middlewares.Authenticate).Post("/", onboardingController.Start)
	router.With(middlewares.Authenticate).Get("/", onboardingController.GetState)
	router.With(middlewares.Authenticate).Put("/steps", onboardingController.SaveStep)
	router.With(middlewares.Authenticate).Post("/advance", onboardingController.Advance)
	router.With(middlewares.Authenticate).Post("/retreat", onboardingController.Retreat)
	router.With(middlewares.Authenticate).Post("/commit", onboardingController.Commit)

	router.With(middlewares.Authenticate).Post("/ehr-import", ehrController.ImportText)
	router.With(middlewares.Authenticate).Post("/ehr-import/file", ehrController.ImportFile)
}
