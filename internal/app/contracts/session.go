package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
	"time"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session, exp time.Duration) (token string, err error)
	ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error)
	GetSessionData(ctx context.Context, token string) (sessionData string, err error)
	DestroySession(ctx context.Context, token string) error
}
