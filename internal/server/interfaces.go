package server

import "context"

// Server defines the lifecycle contract of the data-bag server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT, then shuts down.
	RunServer()

	// Run serves until ctx is cancelled, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
