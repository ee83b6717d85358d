// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/fragment"
	"github.com/MKhiriev/fm-portal/internal/masthead"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/internal/service"
)

var errorStatusMap = map[error]int{
	ErrMissingLFN:              http.StatusBadRequest,
	ErrMissingPageID:           http.StatusBadRequest,
	poller.ErrEmptyLFN:         http.StatusBadRequest,
	masthead.ErrEmptyPageID:    http.StatusBadRequest,
	service.ErrJobNotFound:     http.StatusNotFound,
	service.ErrNoSession:       http.StatusUnauthorized,
	dispatch.ErrUnknownCommand: http.StatusNotFound,

	dispatch.ErrBadRequest:   http.StatusBadRequest,
	dispatch.ErrUnauthorized: http.StatusUnauthorized,
	dispatch.ErrForbidden:    http.StatusForbidden,
	dispatch.ErrNotFound:     http.StatusNotFound,

	dispatch.ErrInternalServerError: http.StatusBadGateway,
	dispatch.ErrBadGateway:          http.StatusBadGateway,
	dispatch.ErrUnavailable:         http.StatusServiceUnavailable,
	fragment.ErrEmptyResponse:       http.StatusBadGateway,
	fragment.ErrMalformedResponse:   http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
