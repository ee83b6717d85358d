// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

// Region receives the markup of service responses, keyed by the element id
// the browser portal would have updated ("fm_response" or an LFN tag).
// Implementations must be safe for concurrent use: jobs write from their own
// goroutines.
type Region interface {
	Update(id, html string)
}

// RegionFunc adapts a function to [Region].
type RegionFunc func(id, html string)

// Update implements [Region].
func (f RegionFunc) Update(id, html string) {
	f(id, html)
}
