// Package http implements the HTTP transport layer of the notes server.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Cross-cutting concerns such as cookie sessions, request tracing,
// access logging and metrics are handled in this package before requests are
// delegated to the service layer.
package http
