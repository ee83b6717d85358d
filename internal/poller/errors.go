// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import "errors"

var (
	ErrEmptyLFN      = errors.New("empty logical file name")
	ErrInvalidConfig = errors.New("invalid poller config")
)
