package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/averycrespi/calculator-mcp/internal/engine"
	"github.com/averycrespi/calculator-mcp/internal/eval"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 4 << 10

type pressRequest struct {
	Button string `json:"button"`
}

type evaluateRequest struct {
	Expression string `json:"expression"`
}

// press applies one button to a session and builds the reply event
func (s *Server) press(surface, sessionID string, calc types.Calculator, button string) (results.StateEvent, error) {
	event := results.StateEvent{
		Type:      results.EventTypeState,
		SessionID: sessionID,
		Button:    button,
	}

	b, err := engine.LookupButton(button)
	if err == nil {
		err = calc.Press(b.ID)
	}
	event.State = calc.State()
	if err != nil {
		event.Type = results.EventTypeError
		event.Error = err.Error()
		return event, err
	}

	metrics.ObservePress(surface, b.ID, event.State)
	return event, nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListButtons(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, engine.Buttons())
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, calc := s.sessions.Create()
	metrics.SetActiveSessions(s.sessions.Len())
	respondJSON(w, http.StatusCreated, results.SessionResponse{SessionID: id, State: calc.State()})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	calc, err := s.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}
	respondJSON(w, http.StatusOK, results.SessionResponse{SessionID: id, State: calc.State()})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	if !s.sessions.Delete(id) {
		respondError(w, http.StatusNotFound, fmt.Errorf("%w: %s", session.ErrNotFound, id))
		return
	}
	metrics.SetActiveSessions(s.sessions.Len())
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "sessionID")
	calc, err := s.sessions.Get(id)
	if err != nil {
		respondError(w, http.StatusNotFound, err)
		return
	}

	var req pressRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if req.Button == "" {
		respondError(w, http.StatusBadRequest, errors.New("button is required"))
		return
	}

	event, err := s.press(metrics.SurfaceHTTP, id, calc, req.Button)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, event)
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req evaluateRequest
	if err := decodeBody(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	result := results.EvaluateToolResult{
		Arguments: results.EvaluateToolArgs{Expression: req.Expression},
	}

	value, err := eval.Evaluate(req.Expression)
	if err != nil {
		var evalErr *eval.EvaluationError
		if errors.As(err, &evalErr) {
			offset := evalErr.Offset
			result.Offset = &offset
		}
		result.Message = "The expression could not be evaluated."
		result.Error = err.Error()
		respondJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	result.Result = eval.FormatNumber(value)
	result.Message = req.Expression + " = " + result.Result
	respondJSON(w, http.StatusOK, result)
}
