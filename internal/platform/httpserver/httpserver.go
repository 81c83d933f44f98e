// Package httpserver owns the http.Server construction so main stays lean.
package httpserver

import (
	"net/http"
	"time"
)

// New returns a server with timeouts suitable for a public API. Handler
// timeouts are enforced separately by the router middleware.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
}
