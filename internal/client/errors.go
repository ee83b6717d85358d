// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoLFN      = errors.New("no LFN given")
	ErrJobsFailed = errors.New("some requests did not complete")
)
