package services

import (
	"context"
	"errors"
	"testing"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/repository"
)

func TestAddIntakeAccumulates(t *testing.T) {
	profiles := repository.NewMemoryProfileRepository()
	seedProfile(t, profiles, models.UserProfile{UserID: "u1"})
	service := NewLedgerService(profiles)

	first, err := service.AddIntake(context.Background(), "u1", models.NutrientRecord{Calories: 100, Protein: 10})
	if err != nil {
		t.Fatalf("first AddIntake: %v", err)
	}
	if first.Calories != 100 || first.Protein != 10 {
		t.Fatalf("unexpected first totals: %+v", first)
	}

	second, err := service.AddIntake(context.Background(), "u1", models.NutrientRecord{Calories: 50, Fat: 4.5, Fiber: 2})
	if err != nil {
		t.Fatalf("second AddIntake: %v", err)
	}
	want := models.NutrientRecord{Calories: 150, Protein: 10, Fat: 4.5, Fiber: 2}
	if second != want {
		t.Fatalf("expected totals %+v, got %+v", want, second)
	}

	stored := getProfile(t, profiles, "u1")
	if stored.DailyIntake != want {
		t.Fatalf("persisted totals %+v do not match returned %+v", stored.DailyIntake, want)
	}
}

func TestAddIntakeUnknownUser(t *testing.T) {
	service := NewLedgerService(repository.NewMemoryProfileRepository())

	if _, err := service.AddIntake(context.Background(), "ghost", models.NutrientRecord{Calories: 1}); !errors.Is(err, repository.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestResetIntake(t *testing.T) {
	profiles := repository.NewMemoryProfileRepository()
	seedProfile(t, profiles, models.UserProfile{
		UserID:      "u1",
		DailyIntake: models.NutrientRecord{Calories: 900, Protein: 40, Fat: 30, Carbs: 100, Fiber: 12},
	})
	service := NewLedgerService(profiles)

	if err := service.ResetIntake(context.Background(), "u1"); err != nil {
		t.Fatalf("ResetIntake: %v", err)
	}
	if got := getProfile(t, profiles, "u1").DailyIntake; !got.IsZero() {
		t.Fatalf("expected zeroed intake, got %+v", got)
	}

	// Resetting again is a no-op, not an error.
	if err := service.ResetIntake(context.Background(), "u1"); err != nil {
		t.Fatalf("second ResetIntake: %v", err)
	}
}

func TestResetAllZeroesEveryProfile(t *testing.T) {
	profiles := repository.NewMemoryProfileRepository()
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", DailyIntake: models.NutrientRecord{Calories: 500}})
	seedProfile(t, profiles, models.UserProfile{UserID: "u2", DailyIntake: models.NutrientRecord{Calories: 1200, Carbs: 80}})
	seedProfile(t, profiles, models.UserProfile{UserID: "u3", TargetCalories: 1800})
	service := NewLedgerService(profiles)

	if err := service.ResetAll(context.Background()); err != nil {
		t.Fatalf("ResetAll: %v", err)
	}

	for _, userID := range []string{"u1", "u2", "u3"} {
		if got := getProfile(t, profiles, userID).DailyIntake; !got.IsZero() {
			t.Errorf("user %s: expected zeroed intake, got %+v", userID, got)
		}
	}
	// Other fields survive the reset.
	if got := getProfile(t, profiles, "u3").TargetCalories; got != 1800 {
		t.Errorf("expected target calories preserved, got %d", got)
	}
}
