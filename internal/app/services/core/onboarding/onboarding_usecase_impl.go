package onboarding

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"time"
)

type onboardingUsecase struct {
	SessionService       contracts.SessionService
	OnboardingRepository contracts.OnboardingSessionRepository
	ProfileUsecase       contracts.ProfileUsecase
}

func NewOnboardingUsecase(
	sessionService contracts.SessionService,
	onboardingRepository contracts.OnboardingSessionRepository,
	profileUsecase contracts.ProfileUsecase,
) contracts.OnboardingUsecase {
	return &onboardingUsecase{
		SessionService:       sessionService,
		OnboardingRepository: onboardingRepository,
		ProfileUsecase:       profileUsecase,
	}
}

func (uc *onboardingUsecase) Start(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Resume an in-flight wizard rather than discarding entered data.
	existing, err := uc.OnboardingRepository.Find(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return BuildState(existing), nil
	}

	wizard := &models.OnboardingSession{
		UserID:    session.UserID,
		StartedAt: time.Now(),
	}
	if err := uc.OnboardingRepository.Save(ctx, wizard); err != nil {
		return nil, err
	}
	return BuildState(wizard), nil
}

func (uc *onboardingUsecase) State(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	return BuildState(wizard), nil
}

func (uc *onboardingUsecase) SaveStep(ctx context.Context, sessionData string, request *requests.SaveOnboardingStep) (*responses.OnboardingState, error) {
	if !KnownStep(request.StepID) {
		return nil, exceptions.ErrOnboardingUnknownStep(request.StepID)
	}

	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	wizard.Profile.Merge(request.Data)

	// Predicates may have hidden steps behind the current index; clamp so
	// the cursor always points at a visible step.
	wizard.CurrentStepIndex = clamp(wizard.CurrentStepIndex, len(VisibleSteps(&wizard.Profile)))

	if err := uc.OnboardingRepository.Save(ctx, wizard); err != nil {
		return nil, err
	}
	return BuildState(wizard), nil
}

func (uc *onboardingUsecase) Advance(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	visible := VisibleSteps(&wizard.Profile)
	wizard.CurrentStepIndex = clamp(wizard.CurrentStepIndex, len(visible))
	current := visible[wizard.CurrentStepIndex]

	// Hard gate: an incomplete step refuses the advance with a typed
	// failure and leaves the wizard untouched.
	if !IsStepValid(current.ID, &wizard.Profile) {
		return nil, exceptions.ErrOnboardingStepInvalid(current.ID)
	}

	wizard.CurrentStepIndex = clamp(wizard.CurrentStepIndex+1, len(visible))
	if err := uc.OnboardingRepository.Save(ctx, wizard); err != nil {
		return nil, err
	}
	return BuildState(wizard), nil
}

func (uc *onboardingUsecase) Retreat(ctx context.Context, sessionData string) (*responses.OnboardingState, error) {
	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	// Going back needs no validity check.
	if wizard.CurrentStepIndex > 0 {
		wizard.CurrentStepIndex--
	}
	if err := uc.OnboardingRepository.Save(ctx, wizard); err != nil {
		return nil, err
	}
	return BuildState(wizard), nil
}

func (uc *onboardingUsecase) Commit(ctx context.Context, sessionData string) (*responses.OnboardingCommit, error) {
	wizard, err := uc.findWizard(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	for _, step := range VisibleSteps(&wizard.Profile) {
		if !IsStepValid(step.ID, &wizard.Profile) {
			return nil, exceptions.ErrOnboardingStepInvalid(step.ID)
		}
	}

	record := BuildProfileRecord(wizard.UserID, &wizard.Profile, time.Now())
	profileID, err := uc.ProfileUsecase.SubmitProfile(ctx, record)
	if err != nil {
		// The wizard state is untouched so the user can simply retry.
		return nil, err
	}

	if err := uc.OnboardingRepository.Delete(ctx, wizard.UserID); err != nil {
		return nil, err
	}
	return &responses.OnboardingCommit{ProfileID: profileID}, nil
}

func (uc *onboardingUsecase) findWizard(ctx context.Context, sessionData string) (*models.OnboardingSession, error) {
	session, err := uc.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}
	wizard, err := uc.OnboardingRepository.Find(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if wizard == nil {
		return nil, exceptions.ErrOnboardingSessionNotFound(nil)
	}
	return wizard, nil
}

// BuildState renders the wizard as the client sees it: the visible steps in
// order, each carrying its validity, with the cursor clamped onto the list.
func BuildState(wizard *models.OnboardingSession) *responses.OnboardingState {
	visible := VisibleSteps(&wizard.Profile)
	index := clamp(wizard.CurrentStepIndex, len(visible))

	steps := make([]responses.OnboardingStep, 0, len(visible))
	for _, step := range visible {
		steps = append(steps, responses.OnboardingStep{
			ID:    step.ID,
			Title: step.Title,
			Valid: IsStepValid(step.ID, &wizard.Profile),
		})
	}

	return &responses.OnboardingState{
		CurrentStepIndex: index,
		CurrentStepID:    visible[index].ID,
		Steps:            steps,
		Profile:          wizard.Profile,
	}
}

func clamp(index, length int) int {
	if index < 0 {
		return 0
	}
	if index > length-1 {
		return length - 1
	}
	return index
}
