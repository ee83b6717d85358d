// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fragment

import "errors"

var (
	// ErrEmptyResponse is returned for a blank body. A blank status reply is
	// a failure, not a finished job.
	ErrEmptyResponse = errors.New("empty response body")
	// ErrMalformedResponse is returned when the body cannot be tokenized.
	ErrMalformedResponse = errors.New("malformed response body")
)
