// Package server runs the data-bag server's HTTP transport.
//
// It covers startup, signal handling, and graceful shutdown.
package server
