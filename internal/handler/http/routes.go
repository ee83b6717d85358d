// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	// pages
	router.Get("/", h.index)
	router.Get("/filemover/", h.index)
	router.Post("/filemover/request", h.submitForm)
	router.Post("/filemover/cancel", h.cancelForm)
	router.Post("/filemover/remove", h.removeForm)
	router.Post("/filemover/resolve", h.resolveForm)
	router.Get("/masthead", h.masthead)

	// json api
	router.Get("/api/version/", h.getServerVersion)
	router.Get("/api/filemover/{command}", h.relayCommand)
	router.Get("/api/jobs", h.listJobs)
	router.Post("/api/jobs", h.submitJob)
	router.Post("/api/jobs/cancel", h.cancelJob)
	router.Post("/api/jobs/remove", h.removeJob)
	router.Get("/api/regions/{id}", h.getRegion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
