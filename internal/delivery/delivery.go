// Package delivery defines the contract all transport servers satisfy.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the
// application container.
type Delivery interface {
	// Serve blocks, serving requests until the context is done or the
	// listener fails.
	Serve(ctx context.Context) error
}
