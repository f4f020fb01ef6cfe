package transport

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout   = 10 * time.Second
	maxMessageSize = 1024
)

var _ types.Transport = &WebSocketTransport{}

// Event is a button click forwarded by the widget
type Event struct {
	Button string `json:"button"`
}

// EventHandler handles one event and returns the reply to send back
type EventHandler func(event Event) any

// WebSocketTransport reads widget events from a WebSocket one at a time and
// writes the handler's reply after each
type WebSocketTransport struct {
	conn    *websocket.Conn
	handler EventHandler
	writeMu sync.Mutex
	once    sync.Once
	done    chan struct{}
}

// NewWebSocketTransport creates a new WebSocket transport
func NewWebSocketTransport(conn *websocket.Conn, handler EventHandler) *WebSocketTransport {
	conn.SetReadLimit(maxMessageSize)
	return &WebSocketTransport{
		conn:    conn,
		handler: handler,
		done:    make(chan struct{}),
	}
}

func (t *WebSocketTransport) Start() error {
	slog.Debug("Starting WebSocket transport", "remote_addr", t.conn.RemoteAddr().String())
	go t.readEvents()
	return nil
}

func (t *WebSocketTransport) Stop() error {
	var err error
	t.once.Do(func() {
		slog.Debug("Stopping WebSocket transport", "remote_addr", t.conn.RemoteAddr().String())
		close(t.done)
		err = t.conn.Close()
	})
	return err
}

// Done is closed once the transport stops
func (t *WebSocketTransport) Done() <-chan struct{} {
	return t.done
}

func (t *WebSocketTransport) isClosed() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *WebSocketTransport) readEvents() {
	defer func() {
		_ = t.Stop()
	}()

	for {
		if t.isClosed() {
			return
		}

		var event Event
		if err := t.conn.ReadJSON(&event); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Error("Failed to read WebSocket event", "error", err)
			}
			return
		}

		startTime := time.Now()
		reply := t.handler(event)
		if err := t.Send(reply); err != nil {
			slog.Error("Failed to write WebSocket reply", "error", err, "button", event.Button)
			return
		}
		slog.Debug("Handled WebSocket event",
			"button", event.Button,
			"duration_ms", time.Since(startTime).Milliseconds())
	}
}

// Send writes a JSON message to the client
func (t *WebSocketTransport) Send(v any) error {
	if t.isClosed() {
		return errors.New("cannot send message: transport is closed")
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	if err := t.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}
	if err := t.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("failed to write WebSocket message: %w", err)
	}
	return nil
}
