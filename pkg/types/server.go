package types

import "context"

// Server defines the interface shared by the MCP and HTTP servers
type Server interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
