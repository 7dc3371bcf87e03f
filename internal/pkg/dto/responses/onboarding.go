package responses

import "healthpilot-service/internal/app/models"

type OnboardingStep struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Valid bool   `json:"valid"`
}

type OnboardingState struct {
	CurrentStepIndex int                    `json:"currentStepIndex"`
	CurrentStepID    string                 `json:"currentStepId"`
	Steps            []OnboardingStep       `json:"steps"`
	Profile          models.ProfileDocument `json:"profile"`
}

type OnboardingCommit struct {
	ProfileID string `json:"profileId"`
}

type EHRImport struct {
	ImportedConditions  int                    `json:"importedConditions"`
	ImportedMedications int                    `json:"importedMedications"`
	ImportedAllergies   int                    `json:"importedAllergies"`
	ImportedSurgeries   int                    `json:"importedSurgeries"`
	ImportedFamily      int                    `json:"importedFamilyHistory"`
	State               *OnboardingState       `json:"state,omitempty"`
	Result              models.EHRImportResult `json:"result"`
}
