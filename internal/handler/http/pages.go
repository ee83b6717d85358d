// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/masthead"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/internal/utils"
	"github.com/MKhiriev/fm-portal/models"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

// refreshSeconds is how often the landing page reloads while a job polls.
const refreshSeconds = 3

type pages struct {
	tmpl *template.Template
}

func newPages() (*pages, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.gohtml")
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}
	return &pages{tmpl: tmpl}, nil
}

func (p *pages) render(w http.ResponseWriter, name string, data any) error {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, err := utils.WriteHTML(w, buf.Bytes(), http.StatusOK)
	return err
}

type jobRow struct {
	models.JobStatus
	Markup template.HTML
}

type indexView struct {
	Masthead       masthead.Fragment
	Response       template.HTML
	Jobs           []jobRow
	Refresh        bool
	RefreshSeconds int
}

// index renders the FileMover landing page. A masthead that fails to build
// is left out and the page is served anyway.
func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	frag, err := h.services.MastheadService.Build(ctx, masthead.Page{
		ID:         h.pageID,
		CurrentURL: currentURL(r),
		Cookies:    r.Cookies(),
	})
	if err != nil {
		log.Error().Err(err).Msg("masthead build failed, rendering page without it")
		frag = masthead.Fragment{}
	}
	if frag.RedirectTo != "" && frag.RedirectTo != r.URL.Path {
		http.Redirect(w, r, frag.RedirectTo, http.StatusSeeOther)
		return
	}

	var user string
	if frag.Login.Kind == models.LoginIdentified {
		user = frag.Login.DN
	}

	owner := models.NewOwner(user, browserSession(w, r))

	view := indexView{Masthead: frag, RefreshSeconds: refreshSeconds}
	if html, ok := h.services.JobService.Region(owner, models.ResponseRegion); ok {
		view.Response = template.HTML(html)
	}
	for _, job := range h.services.JobService.Jobs(owner) {
		view.Jobs = append(view.Jobs, jobRow{JobStatus: job, Markup: template.HTML(job.HTML)})
		if !job.State.Terminal() {
			view.Refresh = true
		}
	}

	if err = h.pages.render(w, "index", view); err != nil {
		log.Error().Err(err).Msg("render index")
	}
}

// masthead serves the masthead of ?page= alone, for pages rendered
// elsewhere. The redirect target, if any, is sent in X-Masthead-Redirect.
func (h *Handler) masthead(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("page")
	if page == "" {
		h.writeError(w, r, ErrMissingPageID)
		return
	}

	frag, err := h.services.MastheadService.Build(r.Context(), masthead.Page{
		ID:         page,
		Title:      r.URL.Query().Get("title"),
		CurrentURL: r.Header.Get("Referer"),
		Cookies:    r.Cookies(),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if frag.RedirectTo != "" {
		w.Header().Set("X-Masthead-Redirect", frag.RedirectTo)
	}

	if err = h.pages.render(w, "masthead", frag); err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("render masthead")
	}
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.JobService.Submit(r.Context(), h.owner(w, r), r.FormValue("lfn"))
	h.afterForm(w, r, err)
}

func (h *Handler) cancelForm(w http.ResponseWriter, r *http.Request) {
	_, err := h.services.JobService.Cancel(r.Context(), h.owner(w, r), r.FormValue("lfn"))
	h.afterForm(w, r, err)
}

func (h *Handler) removeForm(w http.ResponseWriter, r *http.Request) {
	err := h.services.JobService.Remove(r.Context(), h.owner(w, r), r.FormValue("lfn"))
	h.afterForm(w, r, err)
}

func (h *Handler) resolveForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, err)
		return
	}
	_, err := h.services.JobService.Resolve(r.Context(), h.owner(w, r), paramsFromValues(r.PostForm))
	h.afterForm(w, r, err)
}

// afterForm sends the browser back to the landing page. Service failures
// are already rendered into the page regions; only bad input is answered
// with an error status.
func (h *Handler) afterForm(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, poller.ErrEmptyLFN) {
		h.writeError(w, r, err)
		return
	}
	if err != nil {
		logger.FromRequest(r).Warn().Err(err).Str("path", r.URL.Path).Msg("filemover command failed")
	}
	http.Redirect(w, r, "/filemover/", http.StatusSeeOther)
}

func currentURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}
