// Package http implements the relay's HTTP transport layer.
//
// It exposes route wiring, the device register/login/registry handlers, the
// WebSocket sync upgrade, and middleware. Cross-cutting concerns such as
// device authentication, request tracing, access logging, and response
// compression are handled in this package before requests reach the service
// layer or the sync hub.
package http
