// Package delivery defines the contract every transport entrypoint
// implements.
package delivery

import "context"

// Delivery is a serving transport (HTTP API, worker push endpoint).
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
