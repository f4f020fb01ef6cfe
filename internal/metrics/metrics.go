package metrics

import (
	"net/http"

	"github.com/averycrespi/calculator-mcp/internal/eval"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "calculator"

// Surfaces a button press can arrive through
const (
	SurfaceMCP       = "mcp"
	SurfaceHTTP      = "http"
	SurfaceWebSocket = "websocket"
)

// Evaluation outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	buttonPresses = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "button_presses_total",
		Help:      "Calculator button presses by button and surface.",
	}, []string{"button", "surface"})
	evaluations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "evaluations_total",
		Help:      "Formula evaluations by outcome.",
	}, []string{"outcome"})
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "sessions_active",
		Help:      "Number of live calculator sessions.",
	})
)

// ObservePress records a handled button press. Presses of the equals button
// also count as an evaluation, classified by what the display shows afterwards.
func ObservePress(surface, buttonID string, state types.State) {
	buttonPresses.WithLabelValues(buttonID, surface).Inc()
	if buttonID != "equals" {
		return
	}
	if state.Input == eval.ErrorDisplay {
		evaluations.WithLabelValues(OutcomeError).Inc()
	} else {
		evaluations.WithLabelValues(OutcomeOK).Inc()
	}
}

// SetActiveSessions updates the live session gauge
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// Handler serves the Prometheus exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
