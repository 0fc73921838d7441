package events

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/adampresley/springagram/pkg/services"
	"github.com/gorilla/websocket"
)

const (
	defaultReadTimeout = 60 * time.Second
	pingWriteTimeout   = 5 * time.Second
)

type EventsHandlers interface {
	EventStream(w http.ResponseWriter, r *http.Request)
}

type EventsControllerConfig struct {
	EventHub    *services.EventHub
	ReadTimeout time.Duration
}

type EventsController struct {
	eventHub    *services.EventHub
	readTimeout time.Duration
	upgrader    websocket.Upgrader
}

func NewEventsController(config EventsControllerConfig) EventsController {
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = defaultReadTimeout
	}

	return EventsController{
		eventHub:    config.EventHub,
		readTimeout: config.ReadTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

/*
GET /ws
*/
func (c EventsController) EventStream(w http.ResponseWriter, r *http.Request) {
	connection, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade error", "error", err)
		return
	}

	connection.SetReadLimit(512)
	_ = connection.SetReadDeadline(time.Now().Add(c.readTimeout))
	connection.SetPongHandler(func(appData string) error {
		return connection.SetReadDeadline(time.Now().Add(c.readTimeout))
	})

	c.eventHub.Register(connection)
	defer c.eventHub.Unregister(connection)

	stop := make(chan struct{})
	defer close(stop)

	go c.ping(connection, stop)

	for {
		if _, _, err = connection.ReadMessage(); err != nil {
			slog.Debug("event client went away", "error", err)
			return
		}

		_ = connection.SetReadDeadline(time.Now().Add(c.readTimeout))
	}
}

// ping keeps idle clients inside the read deadline. Browsers answer pings without any script.
func (c EventsController) ping(connection *websocket.Conn, stop chan struct{}) {
	ticker := time.NewTicker(c.readTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return

		case <-ticker.C:
			if err := connection.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingWriteTimeout)); err != nil {
				slog.Debug("error pinging event client", "error", err)
				return
			}
		}
	}
}
