package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/averycrespi/calculator-mcp/internal/engine"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type indexPage struct {
	Title   string
	State   types.State
	Buttons []engine.Button
}

// handleIndex renders the widget: formula line, display and button grid.
// The page starts from a fresh engine state; the WebSocket supplies the real one.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	page := indexPage{
		Title:   project.Name,
		State:   engine.New().State(),
		Buttons: engine.Buttons(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, page); err != nil {
		slog.Error("Failed to render widget page", "error", err)
	}
}
