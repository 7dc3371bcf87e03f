package profiles

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type profileUsecase struct {
	ProfileRepository contracts.ProfileRepository
	UserRepository    contracts.UserRepository
	EventPublisher    contracts.EventPublisher
	Log               *zap.Logger
}

func NewProfileUsecase(
	profileRepository contracts.ProfileRepository,
	userRepository contracts.UserRepository,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		ProfileRepository: profileRepository,
		UserRepository:    userRepository,
		EventPublisher:    eventPublisher,
		Log:               logger,
	}
}

func (uc *profileUsecase) SubmitProfile(ctx context.Context, profile *models.Profile) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("profileUsecase.SubmitProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, profile.UserID),
	)

	profileID, err := uc.ProfileRepository.CreateProfile(ctx, profile)
	if err != nil {
		uc.Log.Error("profileUsecase.SubmitProfile error creating profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	if err := uc.UserRepository.UpdateProfileID(ctx, profile.UserID, profileID); err != nil {
		uc.Log.Error("profileUsecase.SubmitProfile error linking profile to user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	// Downstream consumers only get a pointer, never the medical payload.
	event := map[string]string{
		"userId":    profile.UserID,
		"profileId": profileID,
	}
	if err := uc.EventPublisher.Publish(ctx, constvars.RabbitMQProfileCompletedRoutingKey, event); err != nil {
		// The profile is already persisted, so a broker outage must not
		// fail the submission.
		uc.Log.Warn("profileUsecase.SubmitProfile error publishing completion event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("profileUsecase.SubmitProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, profileID),
	)
	return profileID, nil
}

func (uc *profileUsecase) FindByUserID(ctx context.Context, userID string) (*models.Profile, error) {
	profile, err := uc.ProfileRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, exceptions.ErrProfileNotFound(nil)
	}
	return profile, nil
}
