// Package server wires and runs the application's HTTP transport.
//
// It provides startup, signal handling, and graceful shutdown for the
// proxy's single inbound server.
package server
