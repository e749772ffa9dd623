package server

// Server defines the lifecycle contract for the transport server managed by
// this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources before returning.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// A graceful, signal-driven shutdown returns nil.
	RunServer() error
}
