package server

// Server is the lifecycle contract for the transport servers that expose the
// admin API. [RunServer] blocks until the server stops; [Shutdown] drains
// in-flight requests and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
