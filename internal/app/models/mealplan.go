package models

// MealItem is one menu entry from the hosted nutrition database.
type MealItem struct {
	ID         int64   `json:"id"`
	MealDate   string  `json:"mealDate"`
	MealPeriod string  `json:"mealPeriod"`
	Station    string  `json:"station,omitempty"`
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	ProteinG   float64 `json:"proteinG"`
	CarbsG     float64 `json:"carbsG"`
	FatG       float64 `json:"fatG"`
}

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}
