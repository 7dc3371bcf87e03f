package mealplans

import (
	"context"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/dto/responses"
	"healthpilot-service/internal/pkg/exceptions"
	"healthpilot-service/internal/pkg/utils"
	"time"
)

type mealPlanUsecase struct {
	SessionService     contracts.SessionService
	MealPlanRepository contracts.MealPlanRepository
}

func NewMealPlanUsecase(sessionService contracts.SessionService, mealPlanRepository contracts.MealPlanRepository) contracts.MealPlanUsecase {
	return &mealPlanUsecase{
		SessionService:     sessionService,
		MealPlanRepository: mealPlanRepository,
	}
}

func (uc *mealPlanUsecase) DailyPlan(ctx context.Context, sessionData string, date string) (*responses.DailyMealPlan, error) {
	if _, err := uc.SessionService.ParseSessionData(ctx, sessionData); err != nil {
		return nil, err
	}

	if date == "" {
		date = time.Now().Format(utils.ISODateLayout)
	} else if !utils.IsISODate(date) {
		return nil, exceptions.ErrCannotParseDate(nil)
	}

	items, err := uc.MealPlanRepository.FindItemsByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	var totals models.NutritionTotals
	for _, item := range items {
		totals.Calories += item.Calories
		totals.ProteinG += item.ProteinG
		totals.CarbsG += item.CarbsG
		totals.FatG += item.FatG
	}

	return &responses.DailyMealPlan{
		Date:   date,
		Items:  items,
		Totals: totals,
	}, nil
}
