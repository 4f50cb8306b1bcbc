// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a serving adapter (HTTP today) started by the application
// runner. Serve blocks until the adapter stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
