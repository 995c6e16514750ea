// Package delivery holds the inbound surfaces of the console.
package delivery

import "context"

// Delivery is a server started by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
