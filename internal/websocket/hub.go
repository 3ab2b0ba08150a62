package chatws

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"time"

	websocket "github.com/gofiber/contrib/websocket"

	"github.com/anaskhan28/calorie-guy/internal/models"
	"github.com/anaskhan28/calorie-guy/internal/services"
)

// Hub fans bot replies out to the websocket connections of each user. A user
// may hold several connections; every one receives the reply.
type Hub struct {
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	replies    chan *Reply
}

type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	userID string
	send   chan []byte
}

type dispatcher interface {
	HandleMessage(ctx context.Context, msg models.InboundMessage) (string, error)
}

// Reply is one outbound bot message addressed to a user.
type Reply struct {
	UserID string
	Body   string
}

type outboundMessage struct {
	Type      string `json:"type"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		replies:    make(chan *Reply, 64),
	}
}

func NewClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		userID: userID,
		send:   make(chan []byte, 32),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]struct{})
				h.clients[client.userID] = set
			}
			set[client] = struct{}{}
		case client := <-h.unregister:
			set, ok := h.clients[client.userID]
			if !ok {
				continue
			}
			if _, exists := set[client]; exists {
				delete(set, client)
				close(client.send)
			}
			if len(set) == 0 {
				delete(h.clients, client.userID)
			}
		case reply := <-h.replies:
			h.deliver(reply)
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) deliver(reply *Reply) {
	encoded, err := json.Marshal(outboundMessage{
		Type:      "reply",
		Body:      reply.Body,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("chat hub encode reply: %v", err)
		return
	}
	h.sendToUser(reply.UserID, encoded)
}

func (h *Hub) sendToUser(userID string, payload []byte) {
	set, ok := h.clients[userID]
	if !ok {
		return
	}

	for client := range set {
		select {
		case client.send <- payload:
		default:
			delete(set, client)
			close(client.send)
		}
	}
	if len(set) == 0 {
		delete(h.clients, userID)
	}
}

// ReadPump consumes inbound messages from one connection, runs each through
// the dispatcher, and queues the reply for delivery.
func (c *Client) ReadPump(service dispatcher, name string) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming struct {
			Type  string `json:"type"`
			Body  string `json:"body"`
			Media *struct {
				MimeType string `json:"mimetype"`
				Data     string `json:"data"`
			} `json:"media"`
		}
		if err := json.Unmarshal(payload, &incoming); err != nil {
			writeError(c, "invalid message payload")
			continue
		}
		if incoming.Type != "message" {
			writeError(c, "unsupported message type")
			continue
		}

		msg := models.InboundMessage{
			From: c.userID,
			Name: name,
			Body: incoming.Body,
		}
		if incoming.Media != nil {
			data, err := base64.StdEncoding.DecodeString(incoming.Media.Data)
			if err != nil {
				writeError(c, "invalid media payload")
				continue
			}
			msg.Media = &models.Media{MimeType: incoming.Media.MimeType, Data: data}
		}

		reply, err := service.HandleMessage(context.Background(), msg)
		if err != nil {
			log.Printf("chat hub: message from %s: %v", c.userID, err)
			reply = services.ErrorReply
		}
		if reply == "" {
			continue
		}

		c.hub.replies <- &Reply{UserID: c.userID, Body: reply}
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func writeError(client *Client, message string) {
	payload, err := json.Marshal(outboundMessage{
		Type:      "error",
		Body:      message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return
	}
	select {
	case client.send <- payload:
	default:
		client.hub.Unregister(client)
	}
}
