package social

import "context"

// Adapter is the uniform capability every network adapter exposes.
// Callers depend on this interface only, so adapters can be swapped without touching call sites.
type Adapter interface {
	// Network returns the stable lower-case network name (e.g. "twitter").
	Network() string
	// Authenticate simulates establishing a session and emits one auth notice per call.
	Authenticate(ctx context.Context) error
	// Publish simulates sending c to the network and emits one publish notice per call.
	Publish(ctx context.Context, c Content) error
}
