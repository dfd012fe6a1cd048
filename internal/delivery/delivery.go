// Package delivery defines the contract every transport front implements.
package delivery

import "context"

// Delivery is a long-running server owned by the application lifecycle.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
