package responses

import "healthpilot-service/internal/app/models"

type DailyMealPlan struct {
	Date   string                 `json:"date"`
	Items  []models.MealItem      `json:"items"`
	Totals models.NutritionTotals `json:"totals"`
}
