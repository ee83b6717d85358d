// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")
	ErrJobNotFound           = errors.New("job not found")
	ErrNoSession             = errors.New("no browser session")
)
