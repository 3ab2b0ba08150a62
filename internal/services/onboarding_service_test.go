package services

import (
	"context"
	"strings"
	"testing"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/repository"
)

func newOnboardingFixture(t *testing.T) (*OnboardingService, *repository.MemoryProfileRepository) {
	t.Helper()
	profiles := repository.NewMemoryProfileRepository()
	return NewOnboardingService(profiles), profiles
}

func seedProfile(t *testing.T, profiles *repository.MemoryProfileRepository, profile models.UserProfile) {
	t.Helper()
	if err := profiles.Save(context.Background(), &profile); err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func getProfile(t *testing.T, profiles *repository.MemoryProfileRepository, userID string) *models.UserProfile {
	t.Helper()
	profile, err := profiles.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	return profile
}

func TestHandleMessageClampsAge(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"/age 25", 25},
		{"/age 150", 100},
		{"/age 5", 18},
	}

	for _, tc := range cases {
		service, profiles := newOnboardingFixture(t)
		seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha"})

		if _, err := service.HandleMessage(context.Background(), "u1", "Asha", tc.input); err != nil {
			t.Fatalf("HandleMessage(%q): %v", tc.input, err)
		}

		profile := getProfile(t, profiles, "u1")
		if profile.Age != tc.want {
			t.Errorf("input %q: expected age %d, got %d", tc.input, tc.want, profile.Age)
		}
		if profile.Step != 1 {
			t.Errorf("input %q: expected step 1, got %d", tc.input, profile.Step)
		}
	}
}

func TestHandleMessageClampsHeightAndWeight(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Step: 1})

	if _, err := service.HandleMessage(context.Background(), "u1", "Asha", "/height 250"); err != nil {
		t.Fatalf("height: %v", err)
	}
	if got := getProfile(t, profiles, "u1").Height; got != 210 {
		t.Fatalf("expected height clamped to 210, got %d", got)
	}

	if _, err := service.HandleMessage(context.Background(), "u1", "Asha", "/weight 20.5"); err != nil {
		t.Fatalf("weight: %v", err)
	}
	if got := getProfile(t, profiles, "u1").Weight; got != 30 {
		t.Fatalf("expected weight clamped to 30, got %v", got)
	}
}

func TestHandleMessageUnmatchedCommandRepromptsWithoutMutation(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha", Step: 2})

	reply, err := service.HandleMessage(context.Background(), "u1", "Asha", "what do I do now?")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if !strings.Contains(reply, "'/weight'") {
		t.Errorf("expected weight prompt, got %q", reply)
	}
	profile := getProfile(t, profiles, "u1")
	if profile.Step != 2 {
		t.Errorf("expected step unchanged at 2, got %d", profile.Step)
	}
	if profile.Weight != 0 {
		t.Errorf("expected weight unset, got %v", profile.Weight)
	}
}

func TestHandleMessageNonNumericInputReprompts(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha"})

	reply, err := service.HandleMessage(context.Background(), "u1", "Asha", "/age abc")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if !strings.Contains(reply, "'/age'") {
		t.Errorf("expected age prompt again, got %q", reply)
	}
	if got := getProfile(t, profiles, "u1").Step; got != 0 {
		t.Errorf("expected step still 0, got %d", got)
	}
}

func TestHandleMessageGoalOutOfRangeReprompts(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Step: 3})

	if _, err := service.HandleMessage(context.Background(), "u1", "Asha", "/goal 7"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	profile := getProfile(t, profiles, "u1")
	if profile.Step != 3 {
		t.Errorf("expected step unchanged at 3, got %d", profile.Step)
	}
	if profile.Goal != "" {
		t.Errorf("expected goal unset, got %q", profile.Goal)
	}
}

func TestHandleMessageGenderDefaultsToFemale(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Step: 4})

	if _, err := service.HandleMessage(context.Background(), "u1", "Asha", "/gender something"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if got := getProfile(t, profiles, "u1").Gender; got != models.GenderFemale {
		t.Fatalf("expected Female, got %q", got)
	}
}

func TestHandleMessageProgressBarMatchesStep(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha", Step: 2})

	reply, err := service.HandleMessage(context.Background(), "u1", "Asha", "nonsense")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.Contains(reply, "Progress: 🟢🟢⚪⚪⚪⚪") {
		t.Fatalf("expected progress bar for step 2, got %q", reply)
	}
}

func TestHandleMessageFullOnboardingRun(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha"})

	inputs := []string{"/age 25", "/height 175", "/weight 70", "/goal 2", "/gender male", "/activity 3"}
	var reply string
	var err error
	for _, input := range inputs {
		reply, err = service.HandleMessage(context.Background(), "u1", "Asha", input)
		if err != nil {
			t.Fatalf("HandleMessage(%q): %v", input, err)
		}
	}

	profile := getProfile(t, profiles, "u1")
	if profile.Step != 6 {
		t.Fatalf("expected step 6 after full run, got %d", profile.Step)
	}
	if !OnboardingComplete(profile) {
		t.Fatalf("expected onboarding complete")
	}

	// BMR 1673.75 * 1.55 = 2594.3125, maintain goal keeps it.
	if profile.TargetCalories != 2594 {
		t.Errorf("expected target calories 2594, got %d", profile.TargetCalories)
	}
	if !profile.DailyIntake.IsZero() {
		t.Errorf("expected zeroed daily intake, got %+v", profile.DailyIntake)
	}

	for _, fragment := range []string{
		"Thanks for updating your profile, Asha!",
		"(BMR) is 1674 calories",
		"(TDEE) is 2594 calories",
		"To Maintain Weight, your target daily calorie intake is 2594 calories",
		"🍗 Protein: 195g",
		"🥑 Fat: 86g",
		"🍞 Carbs: 259g",
		"🥦 Fiber: 25g",
	} {
		if !strings.Contains(reply, fragment) {
			t.Errorf("finalize message missing %q:\n%s", fragment, reply)
		}
	}
}

func TestHandleMessageStepAdvancesByExactlyOne(t *testing.T) {
	service, profiles := newOnboardingFixture(t)
	seedProfile(t, profiles, models.UserProfile{UserID: "u1", Name: "Asha"})

	reply, err := service.HandleMessage(context.Background(), "u1", "Asha", "/age 30")
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if !strings.HasPrefix(reply, "Great! ") {
		t.Errorf("expected next-step prompt prefixed with Great!, got %q", reply)
	}
	if got := getProfile(t, profiles, "u1").Step; got != 1 {
		t.Fatalf("expected step 1, got %d", got)
	}

	// Sending the same command again must not match the height step.
	if _, err := service.HandleMessage(context.Background(), "u1", "Asha", "/age 30"); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if got := getProfile(t, profiles, "u1").Step; got != 1 {
		t.Fatalf("expected step still 1, got %d", got)
	}
}
