package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/repository"
)

// onboardingSteps is the fixed data-collection order; a profile with
// Step == len(onboardingSteps) is fully onboarded.
var onboardingSteps = []string{"age", "height", "weight", "goal", "gender", "activity"}

var stepPrompts = []string{
	"Please type '/age' followed by your age (18-100).",
	"Please type '/height' followed by your height in cm (55-210).",
	"Please type '/weight' followed by your weight in kg.",
	"Please type '/goal' followed by a number (1: Lose Weight, 2: Maintain Weight, 3: Gain Weight).",
	"Please type '/gender' followed by your gender (male/female).",
	"Please type '/activity' followed by your activity level (1: Sedentary, 2: Lightly Active, 3: Moderately Active, 4: Very Active, 5: Extra Active).",
}

// OnboardingService walks a user through the profile questionnaire one
// command at a time.
type OnboardingService struct {
	profiles ProfileStore
}

func NewOnboardingService(profiles ProfileStore) *OnboardingService {
	return &OnboardingService{profiles: profiles}
}

// OnboardingComplete reports whether the profile has answered every step.
func OnboardingComplete(profile *models.UserProfile) bool {
	return profile.Step >= len(onboardingSteps)
}

// HandleMessage advances the questionnaire by at most one step. A message
// that does not match the expected '/<step> <value>' command, or whose value
// does not parse, re-emits the current step's prompt unchanged.
func (s *OnboardingService) HandleMessage(ctx context.Context, userID, name, body string) (string, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		profile = &models.UserProfile{UserID: userID, Name: name}
	} else if err != nil {
		return "", err
	}

	step := onboardingSteps[profile.Step]
	if !strings.HasPrefix(body, "/"+step) {
		return StepPrompt(profile.Step), nil
	}

	fields := strings.Fields(body)
	if len(fields) < 2 {
		return StepPrompt(profile.Step), nil
	}
	if !applyStepInput(profile, step, fields[1]) {
		return StepPrompt(profile.Step), nil
	}
	profile.Step++

	if profile.Step < len(onboardingSteps) {
		if err := s.profiles.Save(ctx, profile); err != nil {
			return "", err
		}
		return "Great! " + StepPrompt(profile.Step), nil
	}
	return s.finalizeProfile(ctx, profile)
}

// applyStepInput validates, clamps, and stores one answer. It returns false
// when the value cannot be interpreted for the step, leaving the profile
// untouched.
func applyStepInput(profile *models.UserProfile, step, value string) bool {
	switch step {
	case "age":
		age, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		profile.Age = clampInt(age, 18, 100)
	case "height":
		height, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		profile.Height = clampInt(height, 55, 210)
	case "weight":
		weight, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return false
		}
		profile.Weight = math.Max(30, math.Min(300, weight))
	case "goal":
		choice, err := strconv.Atoi(value)
		if err != nil || choice < 1 || choice > len(models.Goals) {
			return false
		}
		profile.Goal = models.Goals[choice-1]
	case "gender":
		if strings.EqualFold(value, "male") {
			profile.Gender = models.GenderMale
		} else {
			profile.Gender = models.GenderFemale
		}
	case "activity":
		choice, err := strconv.Atoi(value)
		if err != nil {
			return false
		}
		profile.Activity = models.ActivityLevels[clampInt(choice, 1, len(models.ActivityLevels))-1]
	default:
		return false
	}
	return true
}

// finalizeProfile runs the metabolic calculator, persists the computed
// targets with a zeroed daily ledger, and builds the completion message.
func (s *OnboardingService) finalizeProfile(ctx context.Context, profile *models.UserProfile) (string, error) {
	bmr := CalculateBMR(profile.Weight, profile.Height, profile.Age, profile.Gender)
	tdee := CalculateTDEE(bmr, profile.Activity)
	profile.TargetCalories = CalculateTargetCalories(tdee, profile.Goal)
	profile.DailyIntake = models.NutrientRecord{}

	if err := s.profiles.Save(ctx, profile); err != nil {
		return "", err
	}

	targets := CalculateMacroTargets(profile.TargetCalories)
	return fmt.Sprintf(`Thanks for updating your profile, %s!
Your base metabolic rate (BMR) is %d calories.
Your total daily energy expenditure (TDEE) is %d calories.
To %s, your target daily calorie intake is %d calories.

Daily Macros Recommendation:
🍗 Protein: %dg
🥑 Fat: %dg
🍞 Carbs: %dg
🥦 Fiber: %dg

You can now ask me about the calories in any food item. Just send me the food item name, for example:
- "1 banana"
- "100gm Oats with milk"
- "1 cup of white steamed rice"

Note: For better accuracy, try to share the portion size and the name of the food item.`,
		profile.Name,
		int(math.Round(bmr)),
		int(math.Round(tdee)),
		profile.Goal,
		profile.TargetCalories,
		targets.Protein,
		targets.Fat,
		targets.Carbs,
		targets.Fiber,
	), nil
}

// StepPrompt is the instruction for a step plus a progress bar proportional
// to how far through the questionnaire the user is.
func StepPrompt(step int) string {
	return fmt.Sprintf("%s\nProgress: %s%s",
		stepPrompts[step],
		strings.Repeat("🟢", step),
		strings.Repeat("⚪", len(onboardingSteps)-step),
	)
}

func clampInt(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
