package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/repository"
)

// ErrorReply is the fixed apology sent when message handling fails; the
// underlying error is logged at the transport boundary.
const ErrorReply = "Sorry, I encountered an error. Please try again later."

const imageAnalysisPrompt = "Analyze this image and provide calorie and nutritional information for the food shown."

// NutritionGateway is the generative-AI boundary: a prompt plus an optional
// image in, free text out. The reply format is requested but never trusted.
type NutritionGateway interface {
	Generate(ctx context.Context, name, message string, image *models.Media) (string, error)
}

// DispatcherService routes each inbound message based on the sender's
// current state and the message shape, and builds the outbound reply.
type DispatcherService struct {
	profiles   ProfileStore
	onboarding *OnboardingService
	ledger     *LedgerService
	gateway    NutritionGateway
}

func NewDispatcherService(
	profiles ProfileStore,
	onboarding *OnboardingService,
	ledger *LedgerService,
	gateway NutritionGateway,
) *DispatcherService {
	return &DispatcherService{
		profiles:   profiles,
		onboarding: onboarding,
		ledger:     ledger,
		gateway:    gateway,
	}
}

// HandleMessage processes one inbound message to completion and returns the
// reply text. An empty reply means the message was not actionable.
func (s *DispatcherService) HandleMessage(ctx context.Context, msg models.InboundMessage) (string, error) {
	if msg.From == models.BroadcastSender {
		return "", nil
	}

	name := msg.Name
	if name == "" {
		name = "User"
	}

	profile, err := s.profiles.Get(ctx, msg.From)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return "", err
	}
	hasProfile := err == nil

	body := strings.ToLower(msg.Body)

	switch {
	case !hasProfile && (body == "hello" || body == "hi"):
		return s.welcomeNewUser(ctx, msg.From, name)
	case !hasProfile || !OnboardingComplete(profile):
		return s.onboarding.HandleMessage(ctx, msg.From, name, msg.Body)
	case msg.Media != nil:
		return s.handleFoodImage(ctx, profile, name, msg.Media)
	case profile.AwaitingConfirmation:
		return s.consumeConfirmation(ctx, profile, body)
	default:
		return s.handleFoodText(ctx, profile, name, msg.Body)
	}
}

func (s *DispatcherService) welcomeNewUser(ctx context.Context, userID, name string) (string, error) {
	if err := s.profiles.Save(ctx, &models.UserProfile{UserID: userID, Name: name}); err != nil {
		return "", err
	}
	return fmt.Sprintf(`Hi 👋🏽 %s, Welcome to CalorieGuy,

Lets create your profile in easy 6 Steps ✨,Please share your age as

/age 21

where 21 is your age as an example

This will help us create your profile and AI will recommend the daily Calorie intake.`, name), nil
}

func (s *DispatcherService) handleFoodImage(ctx context.Context, profile *models.UserProfile, name string, media *models.Media) (string, error) {
	if !media.IsImage() {
		return "Sorry, I can only analyze images. Please send a food image or describe the food in text.", nil
	}

	reply, err := s.gateway.Generate(ctx, name, imageAnalysisPrompt, media)
	if err != nil {
		return "", err
	}
	return s.stagePendingEntry(ctx, profile, reply, "food in the image",
		"Did you actually eat this? Reply 'yes' if you did.")
}

func (s *DispatcherService) handleFoodText(ctx context.Context, profile *models.UserProfile, name, body string) (string, error) {
	reply, err := s.gateway.Generate(ctx, name, body, nil)
	if err != nil {
		return "", err
	}
	return s.stagePendingEntry(ctx, profile, reply, body,
		"Did you actually eat this? Reply 'yes' if you did, you brave soul.")
}

// stagePendingEntry parses the model's reply, stores it as the pending
// entry, and appends the nutrient summary plus the confirmation question.
func (s *DispatcherService) stagePendingEntry(ctx context.Context, profile *models.UserProfile, reply, foodName, confirmQuestion string) (string, error) {
	record, ok := ExtractNutrition(reply)
	if !ok {
		log.Printf("dispatcher: failed to extract nutritional info from: %s", reply)
	}

	profile.LastFood = record
	profile.LastFoodName = foodName
	profile.LastFoodDescription = ExtractDescription(reply)
	profile.AwaitingConfirmation = true
	if err := s.profiles.Save(ctx, profile); err != nil {
		return "", err
	}

	return fmt.Sprintf(`%s

Nutritional Information:
Calories: %s
Protein: %sg
Fat: %sg
Carbs: %sg
Fiber: %sg

%s`,
		reply,
		amount(record.Calories),
		amount(record.Protein),
		amount(record.Fat),
		amount(record.Carbs),
		amount(record.Fiber),
		confirmQuestion,
	), nil
}

// consumeConfirmation interprets the next message as the yes/no answer for
// the staged entry. Either answer clears the confirmation gate.
func (s *DispatcherService) consumeConfirmation(ctx context.Context, profile *models.UserProfile, body string) (string, error) {
	profile.AwaitingConfirmation = false
	if err := s.profiles.Save(ctx, profile); err != nil {
		return "", err
	}

	if body != "yes" {
		return "Phew, dodged a calorie bullet there. What else can I help you with?", nil
	}

	entry := profile.LastFood
	updated, err := s.ledger.AddIntake(ctx, profile.UserID, entry)
	if err != nil {
		return "", err
	}
	targets := CalculateMacroTargets(profile.TargetCalories)

	return fmt.Sprintf(`Total Cal: %s/%d🔻 Updated records 👍🏽
Food: %s with %s Calories and macro breakdown:
Protein: %sg
Fats: %sg
Carbs: %sg
Fibre: %sg
Description: %s

🍗Total Protein: %s/%dg🔻
🥑Total Fat: %s/%dg🔻
🍞Total Carbs: %s/%dg🔻
🥦Total Fiber: %s/%dg🔻

Anything else you want to confess?`,
		amount(updated.Calories), profile.TargetCalories,
		profile.LastFoodName, amount(entry.Calories),
		amount(entry.Protein),
		amount(entry.Fat),
		amount(entry.Carbs),
		amount(entry.Fiber),
		profile.LastFoodDescription,
		amount(updated.Protein), targets.Protein,
		amount(updated.Fat), targets.Fat,
		amount(updated.Carbs), targets.Carbs,
		amount(updated.Fiber), targets.Fiber,
	), nil
}

// amount renders a nutrient value without a trailing ".0" for whole numbers.
func amount(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
