// Package delivery defines the contract every transport entry point
// (HTTP server, future workers) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
