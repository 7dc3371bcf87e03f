package contracts

import (
	"context"
	"healthpilot-service/internal/pkg/dto/requests"
	"healthpilot-service/internal/pkg/dto/responses"
)

type ChatService interface {
	CreateCompletion(ctx context.Context, request *requests.ChatCompletion) (*responses.ChatCompletion, error)
}
