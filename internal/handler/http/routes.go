// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGzipRequest)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// account lifecycle
	router.Group(func(r chi.Router) {
		r.Post("/auth/registro", h.register)
		r.Get("/auth/confirmar/{token}", h.confirm)
		r.Post("/auth/login", h.login)
		r.Post("/auth/cerrar-sesion", h.logout)
		r.Post("/auth/olvide-password", h.forgotPassword)
		r.Get("/auth/olvide-password/{token}", h.checkResetToken)
		r.Post("/auth/olvide-password/{token}", h.newPassword)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/auth/sesion", h.session)
	})

	// browsing, the visitor may or may not be logged in
	router.Group(func(r chi.Router) {
		r.Use(h.identify)
		r.Get("/", h.home)
		r.Get("/categorias/{id}", h.categoryProperties)
		r.Post("/buscador", h.search)
	})

	router.Get("/categorias", h.listCategories)
	router.Get("/precios", h.listPrices)
	router.Get("/api/version", h.getServerVersion)
	router.Get("/api/build", h.getBuildInfo)
	router.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
