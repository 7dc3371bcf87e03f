package mealplans

import (
	"context"
	"database/sql"
	"healthpilot-service/internal/app/contracts"
	"healthpilot-service/internal/app/models"
	"healthpilot-service/internal/pkg/exceptions"
)

type MealPlanPostgresRepository struct {
	DB *sql.DB
}

func NewMealPlanPostgresRepository(db *sql.DB) contracts.MealPlanRepository {
	return &MealPlanPostgresRepository{DB: db}
}

func (r *MealPlanPostgresRepository) FindItemsByDate(ctx context.Context, date string) ([]models.MealItem, error) {
	query := `
		SELECT id, meal_date, meal_period, station, name, calories, protein_g, carbs_g, fat_g
		FROM menu_items
		WHERE meal_date = $1
		ORDER BY meal_period, station, name`

	rows, err := r.DB.QueryContext(ctx, query, date)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	items := make([]models.MealItem, 0)
	for rows.Next() {
		var item models.MealItem
		var station sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.MealDate,
			&item.MealPeriod,
			&station,
			&item.Name,
			&item.Calories,
			&item.ProteinG,
			&item.CarbsG,
			&item.FatG,
		); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		item.Station = station.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return items, nil
}
