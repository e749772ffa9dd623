// Package http implements the HTTP transport layer of the auth/profile
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS,
// and panic recovery are handled in this package before requests are
// delegated to the service layer.
package http
