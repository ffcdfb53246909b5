// Package http implements the HTTP transport layer of the proxy.
//
// It exposes route wiring, the proxy endpoint handler, and middleware used
// by the REST API. Cross-cutting concerns such as bearer-token
// authentication, request tracing, access logging, and CORS are handled in
// this package before requests are delegated to the service layer.
package http
