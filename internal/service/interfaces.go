// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/http"

	"github.com/MKhiriev/fm-portal/internal/masthead"
	"github.com/MKhiriev/fm-portal/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

type MastheadService interface {
	Build(ctx context.Context, page masthead.Page) (masthead.Fragment, error)
}

// UserService names the user behind a browser session.
type UserService interface {
	// CurrentUser returns the session's DN, or "" for anonymous sessions and
	// failed lookups.
	CurrentUser(ctx context.Context, cookies []*http.Cookie) string
}

// CommandService relays named FileMover commands.
type CommandService interface {
	Send(ctx context.Context, name string, params models.Params) (models.Response, error)
}

// JobService runs retrieval requests on behalf of portal visitors. Every
// owner session gets its own regions and polling jobs; an owner with an
// empty Session is rejected.
type JobService interface {
	Submit(ctx context.Context, owner models.Owner, lfn string) (models.JobStatus, error)
	Cancel(ctx context.Context, owner models.Owner, lfn string) (models.JobStatus, error)
	Remove(ctx context.Context, owner models.Owner, lfn string) error
	Resolve(ctx context.Context, owner models.Owner, params models.Params) (models.Response, error)

	// Jobs lists the owner's requests in submission order.
	Jobs(owner models.Owner) []models.JobStatus
	// Region returns the markup last written to the owner's region id.
	Region(owner models.Owner, id string) (string, bool)

	// Close stops every polling job.
	Close()
}
