package delivery

import "context"

// Delivery is a transport that serves traffic until it is stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
