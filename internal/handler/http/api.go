// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
	"github.com/go-chi/chi/v5"
)

type regionResponse struct {
	ID   string `json:"id"`
	HTML string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// relayCommand sends one named command with the request's query parameters
// and returns the decoded reply. It talks to the service directly: a cancel
// relayed here does not stop the caller's polling jobs.
func (h *Handler) relayCommand(w http.ResponseWriter, r *http.Request) {
	resp, err := h.services.CommandService.Send(r.Context(), chi.URLParam(r, "command"), paramsFromValues(r.URL.Query()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	jobs := h.services.JobService.Jobs(h.owner(w, r))
	if jobs == nil {
		jobs = []models.JobStatus{}
	}
	h.writeJSON(w, r, jobs, http.StatusOK)
}

func (h *Handler) submitJob(w http.ResponseWriter, r *http.Request) {
	lfn := r.URL.Query().Get("lfn")
	if lfn == "" {
		h.writeError(w, r, ErrMissingLFN)
		return
	}

	status, err := h.services.JobService.Submit(r.Context(), h.owner(w, r), lfn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, status, http.StatusAccepted)
}

func (h *Handler) cancelJob(w http.ResponseWriter, r *http.Request) {
	lfn := r.URL.Query().Get("lfn")
	if lfn == "" {
		h.writeError(w, r, ErrMissingLFN)
		return
	}

	status, err := h.services.JobService.Cancel(r.Context(), h.owner(w, r), lfn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, r, status, http.StatusOK)
}

func (h *Handler) removeJob(w http.ResponseWriter, r *http.Request) {
	lfn := r.URL.Query().Get("lfn")
	if lfn == "" {
		h.writeError(w, r, ErrMissingLFN)
		return
	}

	if err := h.services.JobService.Remove(r.Context(), h.owner(w, r), lfn); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getRegion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	html, ok := h.services.JobService.Region(h.owner(w, r), id)
	if !ok {
		h.writeJSON(w, r, errorResponse{Error: "no such region"}, http.StatusNotFound)
		return
	}
	h.writeJSON(w, r, regionResponse{ID: id, HTML: html}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("write json response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, errorResponse{Error: err.Error()}, status)
}

// paramsFromValues keeps the first value of every parameter.
func paramsFromValues(values url.Values) models.Params {
	params := make(models.Params, len(values))
	for k, v := range values {
		if len(v) > 0 {
			params[k] = v[0]
		}
	}
	return params
}
