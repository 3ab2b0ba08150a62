package routes

import (
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anaskhan28/calorie-guy/internal/config"
	"github.com/anaskhan28/calorie-guy/internal/handlers"
	"github.com/anaskhan28/calorie-guy/internal/middleware"
	"github.com/anaskhan28/calorie-guy/internal/repository"
	"github.com/anaskhan28/calorie-guy/internal/services"
	chatws "github.com/anaskhan28/calorie-guy/internal/websocket"
)

// RegisterRoutes wires the service graph and mounts both chat-transport
// bindings. The returned scheduler is started by the caller so it can be
// stopped on shutdown. A nil db selects the in-memory profile store.
func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool, gateway services.NutritionGateway) *services.ResetScheduler {
	var profiles services.ProfileStore
	if db != nil {
		profiles = repository.NewProfileRepository(db)
	} else {
		profiles = repository.NewMemoryProfileRepository()
	}

	onboarding := services.NewOnboardingService(profiles)
	ledger := services.NewLedgerService(profiles)
	dispatcher := services.NewDispatcherService(profiles, onboarding, ledger, gateway)
	scheduler := services.NewResetScheduler(ledger)

	webhookHandler := handlers.NewWebhookHandler(dispatcher)
	chatHub := chatws.NewHub()
	go chatHub.Run()
	chatHandler := handlers.NewChatHandler(dispatcher, chatHub)

	api := app.Group("/api")

	messages := api.Group("/v1/messages")
	if cfg.WebhookToken != "" {
		messages.Use(middleware.TokenRequired(cfg.WebhookToken))
	}
	messages.Post("", webhookHandler.HandleInbound)

	api.Use("/v1/ws", chatHandler.WebSocketUpgrade)
	api.Get("/v1/ws", websocket.New(chatHandler.HandleWebSocket))

	return scheduler
}
