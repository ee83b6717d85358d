// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package poller

import "sync"

// MemoryRegions is a [Region] keeping the latest markup per element id.
type MemoryRegions struct {
	mu      sync.RWMutex
	regions map[string]string
}

// NewMemoryRegions returns an empty store.
func NewMemoryRegions() *MemoryRegions {
	return &MemoryRegions{regions: make(map[string]string)}
}

// Update implements [Region].
func (m *MemoryRegions) Update(id, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.regions[id] = html
}

// Get returns the markup last written to id.
func (m *MemoryRegions) Get(id string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	html, ok := m.regions[id]
	return html, ok
}

// Delete drops the markup of id.
func (m *MemoryRegions) Delete(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.regions, id)
}
