package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"geraetewart-server/internal/infra/async"
	"geraetewart-server/internal/infra/httpserver"
	"geraetewart-server/internal/maintenance/usecases"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type RunEvent struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

// RunStreamController pushes generation run summaries to connected
// websocket clients so a monitoring view updates without polling.
type RunStreamController struct {
	broker     async.InternalBroker
	clients    map[*websocket.Conn]bool
	clientsMux sync.RWMutex
	broadcast  chan RunEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewRunStreamController(broker async.InternalBroker) *RunStreamController {
	ctx, cancel := context.WithCancel(context.Background())

	controller := &RunStreamController{
		broker:     broker,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan RunEvent, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		ctx:        ctx,
		cancel:     cancel,
	}

	go controller.run()

	return controller
}

var _ httpserver.Controller = (*RunStreamController)(nil)

func (c *RunStreamController) AddRoutes(router *http.ServeMux) {
	router.Handle("GET /ws/maintenance-runs", c.handleWebSocket())
}

func (c *RunStreamController) handleWebSocket() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", slog.String("error", err.Error()))
			return
		}

		slog.Info("run stream client connected", slog.String("remote_addr", r.RemoteAddr))

		c.register <- conn

		go c.handlePingPong(conn)
		go c.handleClient(conn)
	}
}

func (c *RunStreamController) handleClient(conn *websocket.Conn) {
	defer func() {
		c.unregister <- conn
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Error("websocket read error", slog.String("error", err.Error()))
			} else {
				slog.Debug("websocket connection closed", slog.String("error", err.Error()))
			}
			break
		}
	}
}

func (c *RunStreamController) handlePingPong(conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			return
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *RunStreamController) run() {
	subscription, err := c.broker.Subscribe(usecases.RunsTopic)
	if err != nil {
		slog.Error("failed to subscribe to run events", slog.String("error", err.Error()))
		return
	}
	defer c.broker.Unsubscribe(usecases.RunsTopic, subscription)

	for {
		select {
		case <-c.ctx.Done():
			return

		case client := <-c.register:
			c.clientsMux.Lock()
			c.clients[client] = true
			c.clientsMux.Unlock()

		case client := <-c.unregister:
			c.clientsMux.Lock()
			if _, ok := c.clients[client]; ok {
				delete(c.clients, client)
				client.Close()
			}
			c.clientsMux.Unlock()

		case event := <-c.broadcast:
			c.clientsMux.RLock()
			for client := range c.clients {
				client.SetWriteDeadline(time.Now().Add(10 * time.Second))
				if err := client.WriteJSON(event); err != nil {
					slog.Error("failed to write run event to client", slog.String("error", err.Error()))
					client.Close()
					delete(c.clients, client)
				}
			}
			c.clientsMux.RUnlock()

		case brokerMsg, ok := <-subscription.Receiver:
			if !ok {
				return
			}
			if brokerMsg.Event != usecases.RunCompletedEvent && brokerMsg.Event != usecases.RunFailedEvent {
				continue
			}

			event := RunEvent{
				Type:      brokerMsg.Event,
				Timestamp: time.Now(),
				Data:      brokerMsg.Value,
			}

			select {
			case c.broadcast <- event:
			default:
				slog.Warn("run event broadcast channel full, dropping event")
			}
		}
	}
}

func (c *RunStreamController) Shutdown() {
	slog.Info("shutting down run stream controller")
	c.cancel()

	c.clientsMux.Lock()
	for client := range c.clients {
		client.Close()
	}
	c.clientsMux.Unlock()
}
