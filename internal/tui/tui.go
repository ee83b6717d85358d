// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui renders the terminal status view of the FileMover client.
package tui

import (
	"errors"

	"github.com/MKhiriev/fm-portal/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

// Source is a polling job as the watch view sees it. *poller.Job satisfies
// it.
type Source interface {
	LFN() string
	Events() <-chan models.PollEvent
	State() models.PollState
}

// Watch shows one row per source until every source has closed its event
// stream or the user quits. It returns ErrUserQuit in the latter case and
// leaves stopping the jobs to the caller.
func Watch(sources []Source, opts ...tea.ProgramOption) (map[string]models.PollState, error) {
	finalModel, runErr := tea.NewProgram(newWatchModel(sources), opts...).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(watchModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return result.states(), ErrUserQuit
	}
	return result.states(), nil
}
