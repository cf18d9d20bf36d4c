package server

import "context"

// Server is a transport that serves until its context is done. It satisfies
// workers.Worker.
type Server interface {
	Name() string

	// Run blocks until ctx is done or serving fails.
	Run(ctx context.Context) error
}
