package web

import (
	"log/slog"
	"net/http"

	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/transport"
)

// handleWebSocket attaches a widget to a session. The session is taken from
// the "session" query parameter, or created when absent, and is kept out of
// idle sweeps while the socket is open. The current state is sent first, then
// one state event per button event received.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade WebSocket connection", "error", err)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID, _ = s.sessions.Create()
	}
	calc, release := s.sessions.Attach(sessionID)
	metrics.SetActiveSessions(s.sessions.Len())

	tr := transport.NewWebSocketTransport(conn, func(event transport.Event) any {
		reply, err := s.press(metrics.SurfaceWebSocket, sessionID, calc, event.Button)
		if err != nil {
			slog.Debug("Rejected widget event", "session_id", sessionID, "button", event.Button, "error", err)
		}
		return reply
	})

	go func() {
		<-tr.Done()
		release()
		slog.Debug("Widget detached", "session_id", sessionID)
	}()

	if err := tr.Send(results.StateEvent{
		Type:      results.EventTypeState,
		SessionID: sessionID,
		State:     calc.State(),
	}); err != nil {
		slog.Error("Failed to send initial widget state", "error", err)
		_ = tr.Stop()
		return
	}

	if err := tr.Start(); err != nil {
		slog.Error("Failed to start WebSocket transport", "error", err)
		_ = tr.Stop()
	}
}
