package handlers

import (
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	chatws "github.com/anaskhan28/calorie-guy/internal/websocket"
)

// ChatHandler binds the websocket transport: each connection is one chat
// peer identified by the user query parameter.
type ChatHandler struct {
	dispatcher messageDispatcher
	hub        *chatws.Hub
}

func NewChatHandler(dispatcher messageDispatcher, hub *chatws.Hub) *ChatHandler {
	return &ChatHandler{
		dispatcher: dispatcher,
		hub:        hub,
	}
}

func (h *ChatHandler) WebSocketUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	userID := strings.TrimSpace(c.Query("user"))
	if userID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user is required"})
	}

	c.Locals("user_id", userID)
	c.Locals("name", strings.TrimSpace(c.Query("name")))
	return c.Next()
}

func (h *ChatHandler) HandleWebSocket(conn *websocket.Conn) {
	userID, _ := conn.Locals("user_id").(string)
	name, _ := conn.Locals("name").(string)
	client := chatws.NewClient(h.hub, conn, userID)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump(h.dispatcher, name)
}
