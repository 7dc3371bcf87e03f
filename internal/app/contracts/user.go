package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateProfileID(ctx context.Context, userID, profileID string) error
}
