// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application.
type Delivery interface {
	// Serve runs the server until it fails or is shut down.
	Serve(ctx context.Context) error
}
