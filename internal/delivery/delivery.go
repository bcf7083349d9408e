// Package delivery defines the contract every transport entrypoint
// satisfies so they can be started uniformly.
package delivery

import "context"

// Delivery is a serving entrypoint (an HTTP server, a worker loop).
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
