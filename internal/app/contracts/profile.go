package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
)

type ProfileUsecase interface {
	SubmitProfile(ctx context.Context, profile *models.Profile) (profileID string, err error)
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}

type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) (profileID string, err error)
	FindByUserID(ctx context.Context, userID string) (*models.Profile, error)
}
