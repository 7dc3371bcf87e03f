package requests

import "healthpilot-service/internal/app/models"

type SaveOnboardingStep struct {
	StepID string                  `json:"stepId" validate:"required"`
	Data   *models.ProfileDocument `json:"data" validate:"required"`
}

type ImportEHRText struct {
	RawJSON string `json:"rawJson" validate:"required"`
}
