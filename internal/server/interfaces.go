package server

// Server defines the lifecycle of the vaultd API server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release their listener in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server.
	Shutdown()
}
