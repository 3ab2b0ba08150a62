package handlers

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/services"
)

type messageDispatcher interface {
	HandleMessage(ctx context.Context, msg models.InboundMessage) (string, error)
}

// WebhookHandler is the HTTP binding of the chat transport: the bridge posts
// each inbound message and receives the bot's reply in the response body.
type WebhookHandler struct {
	dispatcher messageDispatcher
}

func NewWebhookHandler(dispatcher messageDispatcher) *WebhookHandler {
	return &WebhookHandler{dispatcher: dispatcher}
}

type inboundMessageRequest struct {
	From  string        `json:"from"`
	Name  string        `json:"name"`
	Body  string        `json:"body"`
	Media *inboundMedia `json:"media"`
}

type inboundMedia struct {
	MimeType string `json:"mimetype"`
	// Data is the media payload, base64-encoded.
	Data string `json:"data"`
}

func (h *WebhookHandler) HandleInbound(c *fiber.Ctx) error {
	var req inboundMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if strings.TrimSpace(req.From) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "from is required"})
	}

	msg := models.InboundMessage{
		From: req.From,
		Name: req.Name,
		Body: req.Body,
	}
	if req.Media != nil {
		data, err := base64.StdEncoding.DecodeString(req.Media.Data)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid media payload"})
		}
		msg.Media = &models.Media{MimeType: req.Media.MimeType, Data: data}
	}

	reply, err := h.dispatcher.HandleMessage(c.Context(), msg)
	if err != nil {
		log.Printf("webhook: message from %s: %v", req.From, err)
		return c.JSON(fiber.Map{"reply": services.ErrorReply})
	}

	return c.JSON(fiber.Map{"reply": reply})
}
