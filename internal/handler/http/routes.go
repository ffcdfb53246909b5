// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	// every data-access route passes the gate first
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/proxy", h.proxy)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
