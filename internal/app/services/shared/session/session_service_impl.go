package session

import (
	"context"
	"fmt"
	"healthpilot-service/internal/app/config"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (s *sessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) (string, error) {
	session.SessionID = utils.GenerateSessionID()
	session.ExpiresAt = time.Now().Add(exp)

	key := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	if err := s.RedisRepository.Set(ctx, key, session, exp); err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, s.InternalConfig.JWT.Secret, s.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return token, nil
}

func (s *sessionService) GetSessionData(ctx context.Context, token string) (string, error) {
	sessionID, err := utils.ParseSessionJWT(token, s.InternalConfig.JWT.Secret)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	sessionData, err := s.RedisRepository.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return sessionData, nil
}

func (s *sessionService) ParseSessionData(ctx context.Context, sessionData string) (*models.Session, error) {
	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionService) DestroySession(ctx context.Context, token string) error {
	sessionID, err := utils.ParseSessionJWT(token, s.InternalConfig.JWT.Secret)
	if err != nil {
		return exceptions.ErrTokenInvalidOrExpired(err)
	}
	key := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return s.RedisRepository.Delete(ctx, key)
}
