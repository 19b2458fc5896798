// Package http implements the REST transport of the data-bag server.
//
// It exposes route wiring, request handlers, and middleware. Bearer token
// authentication, request tracing, access logging and response compression
// are handled in this package before requests reach the data-bag service.
// Items pass through encrypted; nothing here can read their content.
package http
