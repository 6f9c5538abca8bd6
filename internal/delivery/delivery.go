// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the application
// container and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
