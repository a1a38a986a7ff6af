// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started by
// the application bootstrap. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
