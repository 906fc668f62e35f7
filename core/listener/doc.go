// Package listener binds the resolved endpoints and runs the content app on
// them.
//
// # Binding
//
// Bind opens one TCP socket per endpoint and merges them into a single
// MultiListener. Binding is all or nothing: when any endpoint fails, the
// sockets already opened are closed before the error is returned. IPv4
// endpoints are bound with "tcp4" and IPv6 endpoints with "tcp6" so the
// two wildcards can be bound side by side.
//
// # Bootstrap
//
// Bootstrap canonicalizes the served directory, binds, builds the fiber app
// for that directory, prints the reachable URLs and serves until the
// context is cancelled. In-flight requests get a bounded grace period.
//
// # Usage
//
//	b := listener.NewBootstrap(newApp, logger, 3*time.Second)
//	err := b.Run(ctx, endpoints, cfg.Path())
package listener
