// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/fm-portal/internal/poller"
	"github.com/MKhiriev/fm-portal/models"
)

// Watcher follows polling jobs until each has finished and reports their
// final states by LFN.
type Watcher interface {
	Watch(ctx context.Context, jobs []*poller.Job) (map[string]models.PollState, error)
}
