package services

import (
	"math"

	"github.com/anaskhan28/calorie-guy/internal/models"
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivityExtra:     1.9,
}

var goalMultipliers = map[models.Goal]float64{
	models.GoalLoseWeight:     0.85,
	models.GoalMaintainWeight: 1.0,
	models.GoalGainWeight:     1.15,
}

// CalculateBMR computes the basal metabolic rate using Mifflin-St Jeor.
func CalculateBMR(weight float64, height, age int, gender models.Gender) float64 {
	bmr := 10*weight + 6.25*float64(height) - 5*float64(age)
	if gender == models.GenderMale {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE scales BMR by the activity multiplier. An unknown level
// falls back to sedentary.
func CalculateTDEE(bmr float64, activity models.ActivityLevel) float64 {
	multiplier, ok := activityMultipliers[activity]
	if !ok {
		multiplier = activityMultipliers[models.ActivitySedentary]
	}
	return bmr * multiplier
}

// CalculateTargetCalories applies the goal multiplier to TDEE and rounds to
// whole calories.
func CalculateTargetCalories(tdee float64, goal models.Goal) int {
	multiplier, ok := goalMultipliers[goal]
	if !ok {
		multiplier = 1.0
	}
	return int(math.Round(tdee * multiplier))
}

// CalculateMacroTargets derives the daily macro recommendation from target
// calories alone: 30% protein, 30% fat, 40% carbs, fiber fixed at 25g.
func CalculateMacroTargets(targetCalories int) models.MacroTargets {
	calories := float64(targetCalories)
	return models.MacroTargets{
		Protein: int(math.Round(calories * 0.3 / 4)),
		Fat:     int(math.Round(calories * 0.3 / 9)),
		Carbs:   int(math.Round(calories * 0.4 / 4)),
		Fiber:   25,
	}
}
