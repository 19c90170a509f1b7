package chat

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	dom "github.com/NabinS-D/TodoList/internal/domain"
	"github.com/NabinS-D/TodoList/internal/repo"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const historyLimit = 50

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type userCountEvent struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type systemEvent struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type messageEvent struct {
	Type      string `json:"type"`
	User      string `json:"user"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type inboundFrame struct {
	Message string `json:"message"`
}

// Hub owns the set of connected chat clients. All map access happens on
// the Run goroutine; clients talk to it through the channels only.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte

	messages repo.MessageRepo
}

func NewHub(messages repo.MessageRepo) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		messages:   messages,
	}
}

// Run processes register/unregister/broadcast events until ctx is done.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			h.sendHistory(ctx, client)
			h.broadcastJSON(userCountEvent{Type: "user_count", Count: len(h.clients)})
			h.broadcastJSON(systemEvent{Type: "system", Message: client.Username + " joined the chat"})

		case client := <-h.unregister:
			if _, ok := h.clients[client]; !ok {
				continue
			}
			delete(h.clients, client)
			close(client.send)
			h.broadcastJSON(userCountEvent{Type: "user_count", Count: len(h.clients)})
			h.broadcastJSON(systemEvent{Type: "system", Message: client.Username + " left the chat"})

		case data := <-h.broadcast:
			h.fanOut(data)

		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		}
	}
}

// ServeWS upgrades the request and attaches a new client to the hub.
// Missing username falls back to Anonymous, missing room to general.
func (h *Hub) ServeWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}

	username := c.Query("username")
	if username == "" {
		username = "Anonymous"
	}
	room := c.Query("room")
	if room == "" {
		room = "general"
	}

	client := &Client{
		ID:       uuid.New().String(),
		Username: username,
		Room:     room,
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 256),
	}

	go client.writePump()
	go client.readPump()

	h.register <- client
}

// handleMessage persists an incoming chat line and broadcasts it.
func (h *Hub) handleMessage(client *Client, text string) {
	now := time.Now().UTC()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := h.messages.Save(ctx, dom.ChatMessage{
		User:      client.Username,
		Message:   text,
		Room:      client.Room,
		Timestamp: now,
	})
	if err != nil {
		log.Printf("chat: save message: %v", err)
	}

	data, _ := json.Marshal(messageEvent{
		Type:      "message",
		User:      client.Username,
		Message:   text,
		Timestamp: now.Format(time.RFC3339),
	})
	h.broadcast <- data
}

func (h *Hub) sendHistory(ctx context.Context, client *Client) {
	hctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	history, err := h.messages.History(hctx, client.Room, historyLimit)
	if err != nil {
		log.Printf("chat: load history: %v", err)
		return
	}
	for _, m := range history {
		data, _ := json.Marshal(messageEvent{
			Type:      "message",
			User:      m.User,
			Message:   m.Message,
			Timestamp: m.Timestamp.Format(time.RFC3339),
		})
		select {
		case client.send <- data:
		default:
			return
		}
	}
}

func (h *Hub) broadcastJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	h.fanOut(data)
}

func (h *Hub) fanOut(data []byte) {
	for client := range h.clients {
		select {
		case client.send <- data:
		default:
			// drop on slow client
		}
	}
}
