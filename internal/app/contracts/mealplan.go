package contracts

import (
	"context"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/responses"
)

type MealPlanUsecase interface {
	DailyPlan(ctx context.Context, sessionData string, date string) (*responses.DailyMealPlan, error)
}

type MealPlanRepository interface {
	FindItemsByDate(ctx context.Context, date string) ([]models.MealItem, error)
}
