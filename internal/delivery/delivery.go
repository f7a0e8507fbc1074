// Package delivery defines the contract every transport implementation
// (HTTP today, possibly others later) fulfills.
package delivery

import "context"

// Delivery is a serving transport. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
