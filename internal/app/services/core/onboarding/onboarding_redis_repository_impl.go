package onboarding

import (
	"context"
	"fmt"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/constvars"
	"healthpilot-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
)

type onboardingRedisRepository struct {
	RedisRepository contracts.RedisRepository
	Expiry          time.Duration
}

func NewOnboardingRedisRepository(redisRepository contracts.RedisRepository, expiryInHour int) contracts.OnboardingSessionRepository {
	return &onboardingRedisRepository{
		RedisRepository: redisRepository,
		Expiry:          time.Duration(expiryInHour) * time.Hour,
	}
}

func (r *onboardingRedisRepository) Find(ctx context.Context, userID string) (*models.OnboardingSession, error) {
	key := fmt.Sprintf(constvars.RedisKeyOnboardingFormat, userID)
	data, err := r.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, nil
	}

	session := new(models.OnboardingSession)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (r *onboardingRedisRepository) Save(ctx context.Context, session *models.OnboardingSession) error {
	session.UpdatedAt = time.Now()
	key := fmt.Sprintf(constvars.RedisKeyOnboardingFormat, session.UserID)
	return r.RedisRepository.Set(ctx, key, session, r.Expiry)
}

func (r *onboardingRedisRepository) Delete(ctx context.Context, userID string) error {
	key := fmt.Sprintf(constvars.RedisKeyOnboardingFormat, userID)
	return r.RedisRepository.Delete(ctx, key)
}
