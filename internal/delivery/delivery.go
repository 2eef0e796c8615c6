// Package delivery defines the contract every transport entrypoint
// implements so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport server, e.g. the HTTP API.
type Delivery interface {
	// Serve blocks while the transport accepts requests.
	Serve(ctx context.Context) error
}
