package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ProfileRepository is the Postgres-backed profile store, for deployments
// that need profiles to survive restarts.
type ProfileRepository struct {
	db DBTX
}

func NewProfileRepository(db DBTX) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `
	user_id, name, step, age, height, weight, goal, gender, activity,
	target_calories, intake_calories, intake_protein, intake_fat, intake_carbs, intake_fiber,
	awaiting_confirmation, last_food_calories, last_food_protein, last_food_fat,
	last_food_carbs, last_food_fiber, last_food_name, last_food_description`

func (r *ProfileRepository) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var profile models.UserProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.Step,
		&profile.Age,
		&profile.Height,
		&profile.Weight,
		&profile.Goal,
		&profile.Gender,
		&profile.Activity,
		&profile.TargetCalories,
		&profile.DailyIntake.Calories,
		&profile.DailyIntake.Protein,
		&profile.DailyIntake.Fat,
		&profile.DailyIntake.Carbs,
		&profile.DailyIntake.Fiber,
		&profile.AwaitingConfirmation,
		&profile.LastFood.Calories,
		&profile.LastFood.Protein,
		&profile.LastFood.Fat,
		&profile.LastFood.Carbs,
		&profile.LastFood.Fiber,
		&profile.LastFoodName,
		&profile.LastFoodDescription,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
				$16, $17, $18, $19, $20, $21, $22, $23, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			step = EXCLUDED.step,
			age = EXCLUDED.age,
			height = EXCLUDED.height,
			weight = EXCLUDED.weight,
			goal = EXCLUDED.goal,
			gender = EXCLUDED.gender,
			activity = EXCLUDED.activity,
			target_calories = EXCLUDED.target_calories,
			intake_calories = EXCLUDED.intake_calories,
			intake_protein = EXCLUDED.intake_protein,
			intake_fat = EXCLUDED.intake_fat,
			intake_carbs = EXCLUDED.intake_carbs,
			intake_fiber = EXCLUDED.intake_fiber,
			awaiting_confirmation = EXCLUDED.awaiting_confirmation,
			last_food_calories = EXCLUDED.last_food_calories,
			last_food_protein = EXCLUDED.last_food_protein,
			last_food_fat = EXCLUDED.last_food_fat,
			last_food_carbs = EXCLUDED.last_food_carbs,
			last_food_fiber = EXCLUDED.last_food_fiber,
			last_food_name = EXCLUDED.last_food_name,
			last_food_description = EXCLUDED.last_food_description,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.Name,
		profile.Step,
		profile.Age,
		profile.Height,
		profile.Weight,
		profile.Goal,
		profile.Gender,
		profile.Activity,
		profile.TargetCalories,
		profile.DailyIntake.Calories,
		profile.DailyIntake.Protein,
		profile.DailyIntake.Fat,
		profile.DailyIntake.Carbs,
		profile.DailyIntake.Fiber,
		profile.AwaitingConfirmation,
		profile.LastFood.Calories,
		profile.LastFood.Protein,
		profile.LastFood.Fat,
		profile.LastFood.Carbs,
		profile.LastFood.Fiber,
		profile.LastFoodName,
		profile.LastFoodDescription,
	)
	return err
}

func (r *ProfileRepository) ForEach(ctx context.Context, fn func(profile *models.UserProfile) error) error {
	query := `SELECT ` + profileColumns + ` FROM profiles`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var profile models.UserProfile
		if err := rows.Scan(
			&profile.UserID,
			&profile.Name,
			&profile.Step,
			&profile.Age,
			&profile.Height,
			&profile.Weight,
			&profile.Goal,
			&profile.Gender,
			&profile.Activity,
			&profile.TargetCalories,
			&profile.DailyIntake.Calories,
			&profile.DailyIntake.Protein,
			&profile.DailyIntake.Fat,
			&profile.DailyIntake.Carbs,
			&profile.DailyIntake.Fiber,
			&profile.AwaitingConfirmation,
			&profile.LastFood.Calories,
			&profile.LastFood.Protein,
			&profile.LastFood.Fat,
			&profile.LastFood.Carbs,
			&profile.LastFood.Fiber,
			&profile.LastFoodName,
			&profile.LastFoodDescription,
		); err != nil {
			return err
		}
		if err := fn(&profile); err != nil {
			return err
		}
	}
	return rows.Err()
}
