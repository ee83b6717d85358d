// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "errors"

var (
	// ErrBadStatus is returned when the identity service answers with a
	// non-2xx status.
	ErrBadStatus = errors.New("identity service returned an error status")
	// ErrNoUserElement is returned when the XML document has no <user>
	// element.
	ErrNoUserElement = errors.New("identity response has no user element")
	// ErrMalformedResponse is returned when the body is not XML.
	ErrMalformedResponse = errors.New("malformed identity response")
)
