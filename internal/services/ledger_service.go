package services

import (
	"context"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

// LedgerService owns every mutation of a profile's daily intake totals.
type LedgerService struct {
	profiles ProfileStore
}

func NewLedgerService(profiles ProfileStore) *LedgerService {
	return &LedgerService{profiles: profiles}
}

// AddIntake adds a confirmed entry onto the user's running totals and
// returns the updated totals. The profile must already exist.
func (s *LedgerService) AddIntake(ctx context.Context, userID string, entry models.NutrientRecord) (models.NutrientRecord, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return models.NutrientRecord{}, err
	}

	profile.DailyIntake.Calories += entry.Calories
	profile.DailyIntake.Protein += entry.Protein
	profile.DailyIntake.Fat += entry.Fat
	profile.DailyIntake.Carbs += entry.Carbs
	profile.DailyIntake.Fiber += entry.Fiber

	if err := s.profiles.Save(ctx, profile); err != nil {
		return models.NutrientRecord{}, err
	}
	return profile.DailyIntake, nil
}

// ResetIntake zeroes the user's daily totals.
func (s *LedgerService) ResetIntake(ctx context.Context, userID string) error {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}
	profile.DailyIntake = models.NutrientRecord{}
	return s.profiles.Save(ctx, profile)
}

// ResetAll zeroes the daily totals of every stored profile.
func (s *LedgerService) ResetAll(ctx context.Context) error {
	return s.profiles.ForEach(ctx, func(profile *models.UserProfile) error {
		profile.DailyIntake = models.NutrientRecord{}
		return s.profiles.Save(ctx, profile)
	})
}
