// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidPortalConfigs indicates a missing listen address or request
	// timeout.
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidIdentityConfigs indicates a missing identity endpoint, login
	// or logout URL, or a non-positive timeout.
	ErrInvalidIdentityConfigs = errors.New("invalid identity configuration")
	// ErrInvalidFileMoverConfigs indicates a missing service URL or a broken
	// polling schedule (non-positive delays, initial delay above the cap).
	ErrInvalidFileMoverConfigs = errors.New("invalid filemover configuration")
	// ErrInvalidClientConfigs indicates the command line client has no user.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
