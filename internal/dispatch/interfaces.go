// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch sends named FileMover commands to the service.
//
// A [Registry] maps every logical command name to its HTTP path. It is built
// once at startup and handed to a [Dispatcher], which performs the GET,
// maps HTTP failures to the sentinel errors of this package and decodes the
// reply with package fragment.
package dispatch

import (
	"context"

	"github.com/MKhiriev/fm-portal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dispatcher_mock.go -package=mock

// Dispatcher sends one command and returns the decoded reply. Commands are
// one-shot: implementations never retry.
type Dispatcher interface {
	// Send issues cmd with params. It returns [ErrUnknownCommand] (wrapped)
	// for commands missing from the registry, a mapped HTTP error for
	// non-2xx replies, or a fragment decoding error for blank bodies.
	Send(ctx context.Context, cmd models.Command, params models.Params) (models.Response, error)
}
