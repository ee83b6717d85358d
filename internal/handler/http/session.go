// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
)

const sessionCookie = "fm_session"

// browserSession returns the id of the browser's portal session, minting
// one and setting its cookie when the request carries none.
func browserSession(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}

	id := utils.NewID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// owner identifies whose jobs the request acts on.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) models.Owner {
	user := h.services.UserService.CurrentUser(r.Context(), r.Cookies())
	return models.NewOwner(user, browserSession(w, r))
}
