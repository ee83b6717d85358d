// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"sync"

	"github.com/MKhiriev/fm-portal/internal/config"
	"github.com/MKhiriev/fm-portal/internal/dispatch"
	"github.com/MKhiriev/fm-portal/internal/logger"
	"github.com/MKhiriev/fm-portal/internal/masthead"
	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/internal/service"
	"github.com/MKhiriev/fm-portal/models"
)

// ---- Stubs ----

type stubAppInfo struct{ version string }

func (s stubAppInfo) GetAppVersion(context.Context) string { return s.version }

type stubMasthead struct {
	frag masthead.Fragment
	err  error
	last masthead.Page
}

func (s *stubMasthead) Build(_ context.Context, page masthead.Page) (masthead.Fragment, error) {
	s.last = page
	return s.frag, s.err
}

type stubUsers struct{ user string }

func (s stubUsers) CurrentUser(context.Context, []*http.Cookie) string { return s.user }

type stubCommands struct {
	resp   models.Response
	err    error
	name   string
	params models.Params
}

func (s *stubCommands) Send(_ context.Context, name string, params models.Params) (models.Response, error) {
	if _, err := dispatch.NewRegistry("/filemover").Lookup(name); err != nil {
		return models.Response{}, err
	}
	s.name, s.params = name, params
	return s.resp, s.err
}

// stubJobs хранит задания в памяти по ключу сессии, без опроса сервиса.
type stubJobs struct {
	mu      sync.Mutex
	jobs    map[string][]models.JobStatus
	regions map[string]map[string]string
	err     error
	calls   []string
}

func newStubJobs() *stubJobs {
	return &stubJobs{jobs: map[string][]models.JobStatus{}, regions: map[string]map[string]string{}}
}

func (s *stubJobs) record(call string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, call)
}

func (s *stubJobs) Submit(_ context.Context, owner models.Owner, lfn string) (models.JobStatus, error) {
	s.record("submit " + owner.User + " " + lfn)
	if lfn == "" {
		return models.JobStatus{}, poller.ErrEmptyLFN
	}
	if s.err != nil {
		return models.JobStatus{}, s.err
	}
	st := models.JobStatus{LFN: lfn, Tag: models.LFNTag(lfn), State: models.PollPolling, IntervalMS: 3000}
	s.mu.Lock()
	s.jobs[owner.Session] = append(s.jobs[owner.Session], st)
	s.mu.Unlock()
	return st, nil
}

func (s *stubJobs) Cancel(_ context.Context, owner models.Owner, lfn string) (models.JobStatus, error) {
	s.record("cancel " + owner.User + " " + lfn)
	if s.err != nil {
		return models.JobStatus{}, s.err
	}
	return models.JobStatus{LFN: lfn, Tag: models.LFNTag(lfn), State: models.PollStopped}, nil
}

func (s *stubJobs) Remove(_ context.Context, owner models.Owner, lfn string) error {
	s.record("remove " + owner.User + " " + lfn)
	return s.err
}

func (s *stubJobs) Resolve(_ context.Context, owner models.Owner, params models.Params) (models.Response, error) {
	s.record("resolve " + owner.User + " " + params["dataset"])
	return models.Response{}, s.err
}

func (s *stubJobs) Jobs(owner models.Owner) []models.JobStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[owner.Session]
}

func (s *stubJobs) Region(owner models.Owner, id string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	html, ok := s.regions[owner.Session][id]
	return html, ok
}

func (s *stubJobs) Close() {}

type testDeps struct {
	masthead *stubMasthead
	commands *stubCommands
	jobs     *stubJobs
}

// anonSession returns the job-session key of an anonymous browser.
func anonSession(browser string) string {
	return models.NewOwner("", browser).Session
}

func withBrowser(req *http.Request, browser string) *http.Request {
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: browser})
	return req
}

func newTestHandler(user string) (*Handler, *testDeps) {
	deps := &testDeps{
		masthead: &stubMasthead{frag: masthead.Fragment{
			Head:  `<link rel="stylesheet" href="/dmwt_main.css" />`,
			Body:  `<div class="masthead">menu</div>`,
			Login: models.NewLoginState("guest", true),
		}},
		commands: &stubCommands{},
		jobs:     newStubJobs(),
	}

	h, err := NewHandler(&service.Services{
		AppInfoService:  stubAppInfo{version: "test-version"},
		MastheadService: deps.masthead,
		UserService:     stubUsers{user: user},
		CommandService:  deps.commands,
		JobService:      deps.jobs,
	}, config.Portal{PageID: "filemover"}, logger.Nop())
	if err != nil {
		panic(err)
	}
	return h, deps
}
