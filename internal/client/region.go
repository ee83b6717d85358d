// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/fm-portal/internal/tui"
)

// TerminalRegion prints every region update as one "[id] text" line with the
// markup flattened. Repeated identical updates of a region are printed once.
type TerminalRegion struct {
	mu   sync.Mutex
	w    io.Writer
	last map[string]string
}

func NewTerminalRegion(w io.Writer) *TerminalRegion {
	return &TerminalRegion{w: w, last: make(map[string]string)}
}

func (r *TerminalRegion) Update(id, html string) {
	text := tui.PlainText(html)
	if text == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.last[id] == text {
		return
	}
	r.last[id] = text
	_, _ = fmt.Fprintf(r.w, "[%s] %s\n", id, text)
}
