package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	EventPhotosDownloaded    = "photos-downloaded"
	EventPhotoDeleted        = "photo-deleted"
	EventPhotoAddedToGallery = "photo-added-to-gallery"
	EventNetworkError        = "network-error"
)

const eventWriteTimeout = 5 * time.Second

type Event struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Message  string `json:"message"`
	Position int    `json:"position"`
}

// NewEvent stamps a new event with a random id. Position is -1 when the event is not about a single photo.
func NewEvent(eventType, message string, position int) Event {
	return Event{
		ID:       uuid.NewString(),
		Type:     eventType,
		Message:  message,
		Position: position,
	}
}

type EventPublisher interface {
	Publish(event Event)
}

type EventHubConfig struct {
	BufferSize int
}

/*
EventHub fans task outcomes out to every connected browser. Publish never
blocks a task: when the buffer is full the event is dropped and logged.
*/
type EventHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewEventHub(config EventHubConfig) *EventHub {
	if config.BufferSize <= 0 {
		config.BufferSize = 64
	}

	return &EventHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event, config.BufferSize),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
	}
}

// Run dispatches until ctx is cancelled, then closes every client connection.
func (h *EventHub) Run(ctx context.Context) {
	defer h.closeAll()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mutex.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mutex.Unlock()
			slog.Info("event client connected", "clients", count)

		case client := <-h.unregister:
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				_ = client.Close()
			}
			count := len(h.clients)
			h.mutex.Unlock()
			slog.Info("event client disconnected", "clients", count)

		case event := <-h.broadcast:
			h.send(event)
		}
	}
}

func (h *EventHub) Register(client *websocket.Conn) {
	select {
	case h.register <- client:
	case <-h.done:
		_ = client.Close()
	}
}

func (h *EventHub) Unregister(client *websocket.Conn) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *EventHub) Publish(event Event) {
	select {
	case h.broadcast <- event:
	default:
		slog.Warn("event buffer full, dropping event", "type", event.Type, "id", event.ID)
	}
}

func (h *EventHub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *EventHub) send(event Event) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for client := range h.clients {
		_ = client.SetWriteDeadline(time.Now().Add(eventWriteTimeout))

		if err := client.WriteJSON(event); err != nil {
			slog.Error("error sending event", "type", event.Type, "error", err)
			delete(h.clients, client)
			_ = client.Close()
		}
	}
}

func (h *EventHub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	close(h.done)

	for client := range h.clients {
		_ = client.Close()
		delete(h.clients, client)
	}
}
