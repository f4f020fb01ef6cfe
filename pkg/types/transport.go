package types

// Transport defines the per-connection event transport of the widget
type Transport interface {
	Start() error
	Stop() error
	Done() <-chan struct{}
	Send(v any) error
}
