// Package delivery defines the entry points that expose the application.
package delivery

import "context"

// Delivery is a serving surface (HTTP API, worker) started by the app runtime.
type Delivery interface {
	// Serve blocks until the server stops or fails to start.
	Serve(ctx context.Context) error
}
