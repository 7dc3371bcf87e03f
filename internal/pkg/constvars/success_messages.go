package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"

	// Onboarding messages
	OnboardingStartedSuccess   = "onboarding session started"
	OnboardingStepSavedSuccess = "step saved successfully"
	OnboardingAdvancedSuccess  = "moved to the next step"
	OnboardingRetreatedSuccess = "moved to the previous step"
	OnboardingStateSuccess     = "get onboarding state successfully"
	OnboardingCommittedSuccess = "profile completed successfully"

	// EHR import messages
	EHRImportSuccess = "health record imported successfully"

	// Profile messages
	ProfileGetSuccess = "get profile successfully"

	// Care data messages
	VitalCreatedSuccess     = "vital entry recorded successfully"
	VitalListSuccess        = "get vitals successfully"
	VitalDeletedSuccess     = "vital entry deleted successfully"
	ChecklistCreatedSuccess = "checklist item created successfully"
	ChecklistListSuccess    = "get checklist successfully"
	ChecklistToggledSuccess = "checklist item updated successfully"
	ChecklistDeletedSuccess = "checklist item deleted successfully"
	DeviceConnectedSuccess  = "device connected successfully"
	DeviceListSuccess       = "get devices successfully"
	DeviceRemovedSuccess    = "device disconnected successfully"
	MealPlanListSuccess     = "get meal plan successfully"

	// Chat messages
	ChatCompletionSuccess = "assistant responded successfully"
)
