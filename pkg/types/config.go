package types

import "time"

// Serving modes
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Config represents the configuration for the calculator server
type Config struct {
	Mode               string        `yaml:"mode" json:"mode"`
	Addr               string        `yaml:"addr" json:"addr,omitempty"`
	LogLevel           string        `yaml:"log_level" json:"log_level,omitempty"`
	SessionIdleTimeout time.Duration `yaml:"session_idle_timeout" json:"session_idle_timeout,omitempty"`
}
