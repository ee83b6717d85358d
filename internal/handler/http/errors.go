// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrMissingLFN is returned when a job route is called without an lfn.
	ErrMissingLFN = errors.New("missing `lfn` parameter")

	// ErrMissingPageID is returned by the masthead route without a page.
	ErrMissingPageID = errors.New("missing `page` parameter")
)
