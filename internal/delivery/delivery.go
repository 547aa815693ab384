// Package delivery defines the contract every transport (HTTP, workers, ...)
// fulfills so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks serving requests until the delivery is shut down.
	Serve(ctx context.Context) error
}
