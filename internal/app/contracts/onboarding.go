package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
)

type OnboardingUsecase interface {
	Start(ctx context.Context, sessionData string) (*responses.OnboardingState, error)
	State(ctx context.Context, sessionData string) (*responses.OnboardingState, error)
	SaveStep(ctx context.Context, sessionData string, request *requests.SaveOnboardingStep) (*responses.OnboardingState, error)
	Advance(ctx context.Context, sessionData string) (*responses.OnboardingState, error)
	Retreat(ctx context.Context, sessionData string) (*responses.OnboardingState, error)
	Commit(ctx context.Context, sessionData string) (*responses.OnboardingCommit, error)
}

type OnboardingSessionRepository interface {
	Find(ctx context.Context, userID string) (*models.OnboardingSession, error)
	Save(ctx context.Context, session *models.OnboardingSession) error
	Delete(ctx context.Context, userID string) error
}
