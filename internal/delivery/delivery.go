// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a serving process, e.g. the HTTP API or the mail worker.
// Serve blocks until the process stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
