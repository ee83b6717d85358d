// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package dispatch

import (
	"fmt"
	"path"
	"sort"

	"github.com/MKhiriev/fm-portal/models"
)

// Registry maps command names to service paths. It is immutable after
// construction and safe for concurrent use.
type Registry struct {
	paths map[models.Command]string
}

// NewRegistry registers every command of [models.Commands] under basePath,
// e.g. "/filemover" + "statusOne" -> "/filemover/statusOne".
func NewRegistry(basePath string) *Registry {
	if basePath == "" {
		basePath = "/"
	}

	r := &Registry{paths: make(map[models.Command]string, len(models.Commands()))}
	for _, cmd := range models.Commands() {
		r.paths[cmd] = path.Join("/", basePath, string(cmd))
	}

	return r
}

// Path returns the service path of cmd.
func (r *Registry) Path(cmd models.Command) (string, error) {
	p, ok := r.paths[cmd]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
	return p, nil
}

// Lookup resolves a command from its wire name, as received by the portal
// proxy route.
func (r *Registry) Lookup(name string) (models.Command, error) {
	cmd := models.Command(name)
	if _, err := r.Path(cmd); err != nil {
		return "", err
	}
	return cmd, nil
}

// Commands returns the registered commands sorted by name.
func (r *Registry) Commands() []models.Command {
	cmds := make([]models.Command, 0, len(r.paths))
	for cmd := range r.paths {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })

	return cmds
}
