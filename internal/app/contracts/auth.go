package contracts

import (
	"context"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, token string) error
}
