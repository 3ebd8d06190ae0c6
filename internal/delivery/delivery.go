// Package delivery holds the entry points that drive the engine: the HTTP
// bridge to the rendering surface and the background worker.
package delivery

import "context"

// Delivery is a long-running entry point started by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}
